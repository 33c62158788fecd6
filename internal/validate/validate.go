// Package validate holds the pure validation rules applied to every input
// before it reaches storage. Functions here never touch I/O; they trim,
// check, and either return the normalized value or a *types.ValidationError.
package validate

import (
	"strings"
	"time"

	"github.com/uplove-app/uplove/pkg/types"
)

// Year bounds accepted for any stored date.
const (
	MinYear = 1900
	MaxYear = 2100
)

// String trims value and checks its length against the inclusive bounds
// [minLen, maxLen]. Control characters anywhere in the trimmed value are
// rejected. Returns the trimmed string.
func String(value, field string, minLen, maxLen int) (string, error) {
	trimmed := strings.TrimSpace(value)

	if len([]rune(trimmed)) < minLen {
		return "", types.NewValidationError("%s must be at least %d characters", field, minLen)
	}
	if len([]rune(trimmed)) > maxLen {
		return "", types.NewValidationError("%s must not exceed %d characters", field, maxLen)
	}
	if containsControl(trimmed) {
		return "", types.NewValidationError("%s contains invalid characters", field)
	}
	return trimmed, nil
}

// containsControl reports whether s contains a control character, including
// DEL and the C1 range.
func containsControl(s string) bool {
	for _, r := range s {
		if r <= 0x1F || (r >= 0x7F && r <= 0x9F) {
			return true
		}
	}
	return false
}

// Priority checks that value is one of the recognized priority labels and
// returns it as the enumerated type.
func Priority(value string) (types.Priority, error) {
	p := types.Priority(value)
	if !p.IsValid() {
		return "", types.NewValidationError(
			"invalid priority: %s. Must be one of: %s", value, priorityList())
	}
	return p, nil
}

func priorityList() string {
	labels := make([]string, len(types.Priorities))
	for i, p := range types.Priorities {
		labels[i] = string(p)
	}
	return strings.Join(labels, ", ")
}

// Satisfaction checks that value is within the inclusive pillar score range.
func Satisfaction(value int) error {
	if value < types.SatisfactionMin || value > types.SatisfactionMax {
		return types.NewValidationError("satisfaction must be between %d and %d",
			types.SatisfactionMin, types.SatisfactionMax)
	}
	return nil
}

// Date checks that value is a usable timestamp: non-zero, year within
// [MinYear, MaxYear], and not in the future unless allowFuture is set.
func Date(value time.Time, field string, allowFuture bool) error {
	if value.IsZero() {
		return types.NewValidationError("%s is not a valid date", field)
	}
	if !allowFuture && value.After(time.Now()) {
		return types.NewValidationError("%s cannot be in the future", field)
	}
	if value.Year() < MinYear {
		return types.NewValidationError("%s year must be %d or later", field, MinYear)
	}
	if value.Year() > MaxYear {
		return types.NewValidationError("%s year must be %d or earlier", field, MaxYear)
	}
	return nil
}

// ArrayLen checks a list length against the inclusive bounds [minLen, maxLen].
func ArrayLen(n int, field string, minLen, maxLen int) error {
	if n < minLen {
		return types.NewValidationError("%s must have at least %d items", field, minLen)
	}
	if n > maxLen {
		return types.NewValidationError("%s must not exceed %d items", field, maxLen)
	}
	return nil
}

// StringArray checks the list length bounds, trims every element, rejects
// elements that are empty after trimming, and rejects the whole list when
// any two trimmed elements are equal. Returns the trimmed list.
func StringArray(values []string, field string, minLen, maxLen int) ([]string, error) {
	if err := ArrayLen(len(values), field, minLen, maxLen); err != nil {
		return nil, err
	}

	trimmed := make([]string, len(values))
	seen := make(map[string]bool, len(values))
	for i, v := range values {
		t := strings.TrimSpace(v)
		if t == "" {
			return nil, types.NewValidationError("%s[%d] must be a non-empty string", field, i)
		}
		if seen[t] {
			return nil, types.NewValidationError("%s contains duplicate values", field)
		}
		seen[t] = true
		trimmed[i] = t
	}
	return trimmed, nil
}
