package types

// Satisfaction bounds for a pillar score.
const (
	SatisfactionMin = 1
	SatisfactionMax = 10
)

// Pillar is a named dimension of relationship health with an assigned
// priority and a satisfaction score in [SatisfactionMin, SatisfactionMax].
type Pillar struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Priority     Priority `json:"priority"`
	Satisfaction int      `json:"satisfaction"`
}

// PriorityStats summarizes the pillars sharing one priority level.
type PriorityStats struct {
	Priority         Priority `json:"priority"`
	Count            int      `json:"count"`
	MeanSatisfaction float64  `json:"mean_satisfaction"`
}

// PillarStats aggregates pillar satisfaction per priority bucket.
// ByPriority holds one entry per priority level, in ascending priority
// order, including levels with zero pillars.
type PillarStats struct {
	Total      int             `json:"total"`
	ByPriority []PriorityStats `json:"by_priority"`
}
