package models

import "time"

// FullExport holds the structure of a full export file
type FullExport struct {
	ExportedAt time.Time `json:"exportedAt"`
	Profile    Profile   `json:"profile"`
	Data       AppState  `json:"data"`
}

// CheckExport holds the structure of a single check export file
type CheckExport struct {
	ExportedAt time.Time `json:"exportedAt"`
	Profile    Profile   `json:"profile"`
	Check      Check     `json:"check"`
}
