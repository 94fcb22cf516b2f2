package models

import "time"

// Check holds a saved, timestamped vehicle check
type Check struct {
	ID           string         `json:"id" bson:"id"`
	CreatedAt    time.Time      `json:"createdAt" bson:"createdAt"`
	Date         string         `json:"date" bson:"date"`
	VehicleID    string         `json:"vehicleId" bson:"vehicleId"`
	VehicleLabel string         `json:"vehicleLabel" bson:"vehicleLabel"`
	Odometer     string         `json:"odometer" bson:"odometer"`
	GeneralNotes string         `json:"generalNotes" bson:"generalNotes"`
	Sections     []DraftSection `json:"sections" bson:"sections"`
	Summary      Summary        `json:"summary" bson:"summary"`
}
