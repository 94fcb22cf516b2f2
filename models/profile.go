package models

import (
	"errors"
	"strings"
)

// ErrInvalidLanguage is returned for a profile language other than EN or DE
var ErrInvalidLanguage = errors.New("invalid language")

// Language is the profile UI language
type Language string

const (
	// LanguageEN english
	LanguageEN Language = "EN"
	// LanguageDE german
	LanguageDE Language = "DE"
)

// ParseLanguage normalizes s into a Language. An empty string yields LanguageEN.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "EN":
		return LanguageEN, nil
	case "DE":
		return LanguageDE, nil
	}
	return "", ErrInvalidLanguage
}

// Profile holds the structure for the shared profile record
type Profile struct {
	Org      string    `json:"org" bson:"org"`
	User     string    `json:"user" bson:"user"`
	Language Language  `json:"language" bson:"language"`
	Logo     string    `json:"logo" bson:"logo"`
	Vehicles []Vehicle `json:"vehicles" bson:"vehicles"`
}

// DefaultProfile is the profile created on first load
func DefaultProfile() Profile {
	return Profile{
		Language: LanguageEN,
		Vehicles: []Vehicle{},
	}
}

// FindVehicle returns the vehicle with the given id
func (p Profile) FindVehicle(id string) (Vehicle, bool) {
	for _, v := range p.Vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return Vehicle{}, false
}

// Clone returns a copy of the profile that shares no slices with p
func (p Profile) Clone() Profile {
	out := p
	out.Vehicles = append([]Vehicle{}, p.Vehicles...)
	return out
}
