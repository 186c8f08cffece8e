package models

import "time"

// ActivityDB represents an activity record in the database.
type ActivityDB struct {
	ID          int64     `json:"id" db:"id"`                   // Primary key
	UserID      int64     `json:"user_id" db:"user_id"`         // Owning user
	Name        string    `json:"name" db:"name"`               // Activity name, trimmed, max 100 chars
	Points      int       `json:"points" db:"points"`           // Points value, 1..1000
	Date        string    `json:"date" db:"date"`               // Calendar date, YYYY-MM-DD
	Host        string    `json:"host" db:"host"`               // Optional host, trimmed, max 100 chars
	Description string    `json:"description" db:"description"` // Optional description, trimmed, max 200 chars
	CreatedAt   time.Time `json:"created_at" db:"created_at"`   // Creation timestamp, list ordering key
}

// ActivityFields carries the editable fields of an activity. Add and
// update replace all of them together.
type ActivityFields struct {
	Name        string
	Points      int
	Date        string
	Host        string
	Description string
}

// ActivityStatsDB is the aggregate row computed over a user's activities.
// All values are zero when the user has no activities. The json tags fix
// the shape of the cached copy.
type ActivityStatsDB struct {
	TotalActivities int     `json:"total_activities" db:"total_activities"`
	TotalPoints     int     `json:"total_points" db:"total_points"`
	AveragePoints   float64 `json:"average_points" db:"average_points"`
	MaxPoints       int     `json:"max_points" db:"max_points"`
	MinPoints       int     `json:"min_points" db:"min_points"`
}
