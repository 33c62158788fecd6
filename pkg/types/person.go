package types

// Person is someone in the tracked relationship. A person owns zero or more
// necessities; deleting the person deletes them too.
type Person struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Necessities []Necessity `json:"necessities"`
}

// Necessity is a named, described personal need belonging to exactly one
// person.
type Necessity struct {
	ID          string `json:"id"`
	PersonID    string `json:"person_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
