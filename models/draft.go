package models

// Draft holds the in-progress checklist before it is saved as a Check
type Draft struct {
	Date      string         `json:"date" bson:"date"`
	VehicleID string         `json:"vehicleId" bson:"vehicleId"`
	Sections  []DraftSection `json:"sections" bson:"sections"`
}

// DraftSection holds the items of one template section
type DraftSection struct {
	ID    string      `json:"id" bson:"id"`
	Title string      `json:"title" bson:"title"`
	Items []DraftItem `json:"items" bson:"items"`
}

// DraftItem holds the state of one checklist item
type DraftItem struct {
	ID       string   `json:"id" bson:"id"`
	Label    string   `json:"label" bson:"label"`
	Severity Severity `json:"severity" bson:"severity"`
	Note     string   `json:"note" bson:"note"`
	Done     bool     `json:"done" bson:"done"`
}

// Summary holds the counters derived from draft or check sections
type Summary struct {
	TotalItems int `json:"totalItems" bson:"totalItems"`
	DoneCount  int `json:"doneCount" bson:"doneCount"`
	IssueCount int `json:"issueCount" bson:"issueCount"`
}

// DraftResponse holds the live draft together with its counters
type DraftResponse struct {
	Draft   Draft   `json:"draft"`
	Summary Summary `json:"summary"`
}
