package sqlite

// Schema DDL for all tables. Statements are idempotent so Open can run them
// on every start. Timestamps (relationship_metadata.created_at and
// up_loves.date) are stored as epoch milliseconds.
const (
	createRelationshipMetadata = `CREATE TABLE IF NOT EXISTS relationship_metadata (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    name TEXT NOT NULL,
    created_at INTEGER NOT NULL
);`

	createPersons = `CREATE TABLE IF NOT EXISTS persons (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL
);`

	createNecessities = `CREATE TABLE IF NOT EXISTS necessities (
    id TEXT PRIMARY KEY,
    person_id TEXT NOT NULL,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    FOREIGN KEY (person_id) REFERENCES persons(id) ON DELETE CASCADE
);`

	createCommitments = `CREATE TABLE IF NOT EXISTS commitments (
    id TEXT PRIMARY KEY,
    type TEXT NOT NULL CHECK (type IN ('todo', 'tokeep')),
    description TEXT NOT NULL,
    is_done INTEGER NOT NULL CHECK (is_done IN (0, 1))
);`

	createPillars = `CREATE TABLE IF NOT EXISTS pillars (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    priority TEXT NOT NULL,
    satisfaction INTEGER NOT NULL CHECK (satisfaction BETWEEN 1 AND 10)
);`

	createUpLoves = `CREATE TABLE IF NOT EXISTS up_loves (
    id TEXT PRIMARY KEY,
    date INTEGER NOT NULL
);`

	// Association rows follow their up_love on delete. The pillar side has no
	// action so the engine refuses to delete a pillar still referenced by a
	// snapshot.
	createUpLovePillars = `CREATE TABLE IF NOT EXISTS up_love_pillars (
    up_love_id TEXT NOT NULL,
    pillar_id TEXT NOT NULL,
    PRIMARY KEY (up_love_id, pillar_id),
    FOREIGN KEY (up_love_id) REFERENCES up_loves(id) ON DELETE CASCADE,
    FOREIGN KEY (pillar_id) REFERENCES pillars(id)
);`

	// Item rows keep their insertion order; reads sort by rowid.
	createUpLoveItems = `CREATE TABLE IF NOT EXISTS up_love_items (
    up_love_id TEXT NOT NULL,
    item_type TEXT NOT NULL CHECK (item_type IN ('to_improve', 'to_praise')),
    content TEXT NOT NULL,
    FOREIGN KEY (up_love_id) REFERENCES up_loves(id) ON DELETE CASCADE
);`
)

// Index DDL for common lookups.
const (
	idxNecessitiesPerson = `CREATE INDEX IF NOT EXISTS idx_necessities_person ON necessities(person_id);`
	idxCommitmentsType   = `CREATE INDEX IF NOT EXISTS idx_commitments_type ON commitments(type);`
	idxUpLovePillars     = `CREATE INDEX IF NOT EXISTS idx_up_love_pillars_pillar ON up_love_pillars(pillar_id);`
	idxUpLoveItems       = `CREATE INDEX IF NOT EXISTS idx_up_love_items_love ON up_love_items(up_love_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createRelationshipMetadata,
	createPersons,
	createNecessities,
	createCommitments,
	createPillars,
	createUpLoves,
	createUpLovePillars,
	createUpLoveItems,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxNecessitiesPerson,
	idxCommitmentsType,
	idxUpLovePillars,
	idxUpLoveItems,
}

// clearOrder lists every table child-first, so the whole-store reset can
// delete rows without tripping foreign keys.
var clearOrder = []string{
	"relationship_metadata",
	"up_love_items",
	"up_love_pillars",
	"up_loves",
	"pillars",
	"commitments",
	"necessities",
	"persons",
}
