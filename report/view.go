package report

import (
	"github.com/linesmerrill/fleetcheck/inspection"
	"github.com/linesmerrill/fleetcheck/models"
)

func view(p models.Profile, date, label, odometer, notes string, sections []models.DraftSection, s models.Summary) models.ReportView {
	sections = inspection.CloneSections(sections)
	if sections == nil {
		sections = []models.DraftSection{}
	}
	return models.ReportView{
		Org:          p.Org,
		User:         p.User,
		Logo:         p.Logo,
		Date:         date,
		VehicleLabel: label,
		Odometer:     odometer,
		Notes:        notes,
		Sections:     sections,
		Totals: models.ReportTotals{
			TotalItems: s.TotalItems,
			DoneCount:  s.DoneCount,
			IssueCount: s.IssueCount,
			NoteCount:  inspection.NoteCount(sections),
		},
	}
}

// BuildView returns the printable report of a saved check. Totals come from
// the summary frozen at commit time, only the note count is taken from the
// sections.
func BuildView(p models.Profile, c models.Check) models.ReportView {
	return view(p, c.Date, c.VehicleLabel, c.Odometer, c.GeneralNotes, c.Sections, c.Summary)
}

// BuildDraftView returns the printable report of the draft in progress
func BuildDraftView(p models.Profile, d models.Draft, label, odometer, notes string) models.ReportView {
	if label == "" {
		if v, ok := p.FindVehicle(d.VehicleID); ok {
			label = v.DisplayLabel()
		}
	}
	return view(p, d.Date, label, odometer, notes, d.Sections, inspection.Summarize(d.Sections))
}
