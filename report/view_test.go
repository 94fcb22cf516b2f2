package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linesmerrill/fleetcheck/inspection"
	"github.com/linesmerrill/fleetcheck/models"
	"github.com/linesmerrill/fleetcheck/report"
)

func TestBuildView(t *testing.T) {
	p := models.Profile{Org: "ACME", User: "Kim", Logo: "data:image/png;base64,AAAA"}
	c := tyreCheck()

	v := report.BuildView(p, c)

	assert.Equal(t, "ACME", v.Org)
	assert.Equal(t, "Kim", v.User)
	assert.Equal(t, p.Logo, v.Logo)
	assert.Equal(t, "Van 1", v.VehicleLabel)
	assert.Equal(t, "  Returned late  ", v.Notes)
	assert.Equal(t, models.ReportTotals{TotalItems: 3, DoneCount: 2, IssueCount: 1, NoteCount: 1}, v.Totals)

	v.Sections[0].Items[0].Label = "changed"
	assert.Equal(t, "Tyres", c.Sections[0].Items[0].Label)
}

func TestBuildDraftView(t *testing.T) {
	p := models.Profile{Vehicles: []models.Vehicle{{ID: "v1", Make: "VW", Model: "Crafter"}}}
	d := inspection.NewDraft(inspection.DefaultTemplate(), "2026-10-19", "v1")

	v := report.BuildDraftView(p, d, "", "500", "")

	assert.Equal(t, "VW Crafter", v.VehicleLabel)
	assert.Equal(t, "500", v.Odometer)
	assert.Equal(t, 30, v.Totals.TotalItems)
	assert.Equal(t, 0, v.Totals.IssueCount)
}

func TestBuildView_UsesStoredSummary(t *testing.T) {
	c := tyreCheck()
	c.Summary = models.Summary{TotalItems: 30, DoneCount: 12, IssueCount: 4}

	v := report.BuildView(models.Profile{}, c)

	assert.Equal(t, models.ReportTotals{TotalItems: 30, DoneCount: 12, IssueCount: 4, NoteCount: 1}, v.Totals)
	assert.Contains(t, report.FormatSummary(c), "Items: 12/30 done")
}
