// Package inspection holds the checklist core: the default template and its
// revision gate, the draft engine, the check history and the vehicle registry.
// Every function here is a pure transformation; persisting the results is the
// caller's job.
package inspection

import (
	"time"

	"github.com/linesmerrill/fleetcheck/models"
)

const (
	// CurrentRevision is the revision of DefaultTemplate. Bump it whenever the
	// sections or items change so stored templates get replaced.
	CurrentRevision = 4

	// AppID identifies the app record
	AppID = "vehicle-check"
	// AppVersion is the app record schema version, part of the store key
	AppVersion = "1"
)

type itemDef struct {
	id, label string
}

type sectionDef struct {
	id, title string
	items     []itemDef
}

var defaultSections = []sectionDef{
	{"exterior", "Exterior", []itemDef{
		{"tyres", "Tyres"},
		{"lights", "Lights & indicators"},
		{"mirrors", "Mirrors & windows"},
		{"wipers", "Wipers & washer fluid"},
		{"body", "Body damage"},
		{"plates", "Number plates"},
	}},
	{"engine", "Engine bay", []itemDef{
		{"oil", "Oil level"},
		{"coolant", "Coolant level"},
		{"brake_fluid", "Brake fluid"},
		{"leaks", "Leaks under vehicle"},
	}},
	{"cabin", "Cabin", []itemDef{
		{"belts", "Seat belts"},
		{"warnings", "Dashboard warning lights"},
		{"horn", "Horn"},
		{"brakes", "Brakes (test)"},
		{"cabin_damage", "Cabin damage"},
		{"clean", "Cleanliness"},
	}},
	{"equipment", "Safety equipment", []itemDef{
		{"first_aid", "First-aid kit"},
		{"triangle", "Warning triangle"},
		{"vest", "Hi-vis vest"},
		{"extinguisher", "Fire extinguisher"},
		{"puncture_kit", "Puncture kit / spare wheel"},
	}},
	{"documents", "Documents", []itemDef{
		{"registration", "Registration papers"},
		{"insurance", "Insurance card"},
		{"fuel_card", "Fuel card"},
	}},
	{"post_trip", "Post-trip", []itemDef{
		{"fuel_level", "Fuel / charge level"},
		{"new_damage", "New damage reported"},
		{"locked", "Vehicle locked"},
		{"keys", "Keys returned"},
	}},
}

// DefaultTemplate builds a fresh copy of the built-in template
func DefaultTemplate() models.Template {
	t := models.Template{
		Revision: CurrentRevision,
		Name:     "Vehicle check",
		Sections: make([]models.Section, 0, len(defaultSections)),
	}
	for _, sd := range defaultSections {
		s := models.Section{ID: sd.id, Title: sd.title, Items: make([]models.ItemDefinition, 0, len(sd.items))}
		for _, it := range sd.items {
			s.Items = append(s.Items, models.ItemDefinition{ID: it.id, Label: it.label, DefaultSeverity: models.SeverityOK})
		}
		t.Sections = append(t.Sections, s)
	}
	return t
}

// LoadTemplate returns the stored template when its revision is current,
// otherwise the default template.
func LoadTemplate(stored *models.AppState) models.Template {
	if stored == nil || stored.Template.Revision != CurrentRevision {
		return DefaultTemplate()
	}
	return stored.Template
}

// LoadAppState turns the stored app record (nil when absent) into the in-memory
// state. Checks survive a template replacement.
func LoadAppState(stored *models.AppState, now time.Time) models.AppState {
	state := models.AppState{
		Meta: models.Meta{
			AppID:     AppID,
			Version:   AppVersion,
			UpdatedAt: now.UTC(),
		},
		Template: LoadTemplate(stored),
		Checks:   []models.Check{},
	}
	if stored != nil {
		if !stored.Meta.UpdatedAt.IsZero() {
			state.Meta.UpdatedAt = stored.Meta.UpdatedAt
		}
		if stored.Checks != nil {
			state.Checks = stored.Checks
		}
	}
	return state
}
