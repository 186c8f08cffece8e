package models

// TotalSummary is the running points total for a user together with how
// many points remain until the goal is reached.
type TotalSummary struct {
	Total     int `json:"total"`
	Remaining int `json:"remaining"`
}

// StatsSummary is the full set of per-user activity statistics.
type StatsSummary struct {
	TotalActivities int     `json:"totalActivities"`
	TotalPoints     int     `json:"totalPoints"`
	AveragePoints   float64 `json:"averagePoints"`
	MaxPoints       int     `json:"maxPoints"`
	MinPoints       int     `json:"minPoints"`
	Remaining       int     `json:"remaining"`
}
