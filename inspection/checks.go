package inspection

import (
	"time"

	"github.com/google/uuid"

	"github.com/linesmerrill/fleetcheck/models"
)

// Committer turns drafts into checks. Now and NewID are swappable for tests.
type Committer struct {
	Now   func() time.Time
	NewID func() string
}

// NewCommitter returns a Committer using the wall clock and random uuids
func NewCommitter() *Committer {
	return &Committer{
		Now:   time.Now,
		NewID: func() string { return uuid.New().String() },
	}
}

// Commit snapshots the draft into a new check. An empty vehicleLabel is
// resolved from the profile's vehicle.
func (c *Committer) Commit(d models.Draft, p models.Profile, vehicleLabel, odometer, generalNotes string) models.Check {
	if vehicleLabel == "" {
		if v, ok := p.FindVehicle(d.VehicleID); ok {
			vehicleLabel = v.DisplayLabel()
		}
	}
	sections := CloneSections(d.Sections)
	if sections == nil {
		sections = []models.DraftSection{}
	}
	return models.Check{
		ID:           c.NewID(),
		CreatedAt:    c.Now().UTC(),
		Date:         d.Date,
		VehicleID:    d.VehicleID,
		VehicleLabel: vehicleLabel,
		Odometer:     odometer,
		GeneralNotes: generalNotes,
		Sections:     sections,
		Summary:      Summarize(sections),
	}
}

// Append puts check at the front of the history
func Append(checks []models.Check, check models.Check) []models.Check {
	out := make([]models.Check, 0, len(checks)+1)
	out = append(out, check)
	return append(out, checks...)
}

// Remove drops the check with the given id. Unknown ids leave the history as is.
func Remove(checks []models.Check, id string) []models.Check {
	out := make([]models.Check, 0, len(checks))
	for _, c := range checks {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

// FindByID looks up a check
func FindByID(checks []models.Check, id string) (models.Check, bool) {
	for _, c := range checks {
		if c.ID == id {
			return c, true
		}
	}
	return models.Check{}, false
}

// FilterByVehicle returns the checks recorded for one vehicle, newest first
func FilterByVehicle(checks []models.Check, vehicleID string) []models.Check {
	out := []models.Check{}
	for _, c := range checks {
		if c.VehicleID == vehicleID {
			out = append(out, c)
		}
	}
	return out
}
