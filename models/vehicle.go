package models

import "errors"

// ErrInvalidFuelType is returned when a vehicle carries a fuel type outside FuelTypes
var ErrInvalidFuelType = errors.New("invalid fuel type")

// FuelTypes lists the accepted fuel type values. The empty string means unset.
var FuelTypes = []string{
	"",
	"Diesel",
	"Petrol",
	"Electric",
	"Hybrid",
	"Plug-in hybrid",
	"LPG",
	"CNG",
	"Other",
}

// Vehicle holds the structure for a vehicle stored in the profile record
type Vehicle struct {
	ID         string `json:"id" bson:"id"`
	Label      string `json:"label" bson:"label"`
	Plate      string `json:"plate" bson:"plate"`
	Make       string `json:"make" bson:"make"`
	Model      string `json:"model" bson:"model"`
	FuelType   string `json:"fuelType" bson:"fuelType"`
	Year       string `json:"year" bson:"year"`
	Vin        string `json:"vin" bson:"vin"`
	TuvUntil   string `json:"tuvUntil" bson:"tuvUntil"`
	ServiceDue string `json:"serviceDue" bson:"serviceDue"`
	Notes      string `json:"notes" bson:"notes"`
}

// ValidFuelType reports whether f is one of FuelTypes
func ValidFuelType(f string) bool {
	for _, ft := range FuelTypes {
		if ft == f {
			return true
		}
	}
	return false
}

// DisplayLabel returns the label shown for the vehicle: its label, else the
// plate, else make and model
func (v Vehicle) DisplayLabel() string {
	if v.Label != "" {
		return v.Label
	}
	if v.Plate != "" {
		return v.Plate
	}
	switch {
	case v.Make != "" && v.Model != "":
		return v.Make + " " + v.Model
	case v.Make != "":
		return v.Make
	default:
		return v.Model
	}
}
