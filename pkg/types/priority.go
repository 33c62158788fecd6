package types

// Priority is the importance level assigned to a pillar.
// The set of values is closed; anything else is rejected at validation.
type Priority string

// Priority levels, lowest to highest.
const (
	PriorityVeryLow  Priority = "very-low"
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityVeryHigh Priority = "very-high"
)

// Priorities lists every valid priority in ascending order.
var Priorities = []Priority{
	PriorityVeryLow,
	PriorityLow,
	PriorityMedium,
	PriorityHigh,
	PriorityVeryHigh,
}

// validPriorities is the set of recognized priority values.
var validPriorities = map[Priority]bool{
	PriorityVeryLow:  true,
	PriorityLow:      true,
	PriorityMedium:   true,
	PriorityHigh:     true,
	PriorityVeryHigh: true,
}

// IsValid reports whether p is one of the recognized priority levels.
func (p Priority) IsValid() bool {
	return validPriorities[p]
}
