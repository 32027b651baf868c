package models

// AppData is the canonical interchange document for export and import.
// Field names and shape are fixed; external tooling depends on them.
type AppData struct {
	Habits      []Habit      `json:"habits"`
	Tasks       []Task       `json:"tasks"`
	Supplements []Supplement `json:"supplements"`
	WaterIntake int          `json:"waterIntake"`
	LastUpdated string       `json:"lastUpdated"` // RFC3339 timestamp
}
