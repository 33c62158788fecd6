package types

// CommitmentType discriminates the two commitment variants stored in the
// commitments table.
type CommitmentType string

// Commitment variants. A todo is a one-off task; a tokeep is a standing
// practice. The variants differ only in label, not structure.
const (
	CommitmentTodo   CommitmentType = "todo"
	CommitmentToKeep CommitmentType = "tokeep"
)

// validCommitmentTypes is the set of recognized commitment type tags.
var validCommitmentTypes = map[CommitmentType]bool{
	CommitmentTodo:   true,
	CommitmentToKeep: true,
}

// IsValid reports whether t is a recognized commitment type.
func (t CommitmentType) IsValid() bool {
	return validCommitmentTypes[t]
}

// Commitment is a shared task or practice with a completion flag.
// Reads always filter by Type; the two variants never mix.
type Commitment struct {
	ID          string         `json:"id"`
	Type        CommitmentType `json:"type"`
	Description string         `json:"description"`
	IsDone      bool           `json:"is_done"`
}
