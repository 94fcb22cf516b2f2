package models

// ReportView holds everything the UI needs to render a printable report
type ReportView struct {
	Org          string         `json:"org"`
	User         string         `json:"user"`
	Logo         string         `json:"logo"`
	Date         string         `json:"date"`
	VehicleLabel string         `json:"vehicleLabel"`
	Odometer     string         `json:"odometer"`
	Notes        string         `json:"notes"`
	Sections     []DraftSection `json:"sections"`
	Totals       ReportTotals   `json:"totals"`
}

// ReportTotals holds the counters printed in the report footer
type ReportTotals struct {
	TotalItems int `json:"totalItems"`
	DoneCount  int `json:"doneCount"`
	IssueCount int `json:"issueCount"`
	NoteCount  int `json:"noteCount"`
}

// Email holds a ready to send message for a check
type Email struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	HTML    string `json:"html,omitempty"`
}
