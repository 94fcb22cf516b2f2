package report_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linesmerrill/fleetcheck/models"
	"github.com/linesmerrill/fleetcheck/report"
)

func tyreCheck() models.Check {
	return models.Check{
		ID:           "c1",
		Date:         "2026-10-19",
		VehicleLabel: "Van 1",
		Odometer:     "12345",
		GeneralNotes: "  Returned late  ",
		Sections: []models.DraftSection{
			{ID: "exterior", Title: "Exterior", Items: []models.DraftItem{
				{ID: "tyres", Label: "Tyres", Severity: models.SeverityIssue, Note: "Low pressure", Done: true},
				{ID: "lights", Label: "Lights & indicators", Severity: models.SeverityOK, Done: true},
			}},
			{ID: "cabin", Title: "Cabin", Items: []models.DraftItem{
				{ID: "clean", Label: "Cleanliness", Severity: models.SeverityNote},
			}},
		},
		Summary: models.Summary{TotalItems: 3, DoneCount: 2, IssueCount: 1},
	}
}

func TestFormatSummary(t *testing.T) {
	want := strings.Join([]string{
		"Vehicle check",
		"Date: 2026-10-19",
		"Vehicle: Van 1",
		"Odometer: 12345",
		"Items: 2/3 done",
		"Issues: 1",
		"",
		"General notes:",
		"Returned late",
		"",
		"Findings:",
		"• Exterior: Tyres — Low pressure",
		"• Cabin: Cleanliness",
		"",
		report.Tip,
	}, "\n")

	assert.Equal(t, want, report.FormatSummary(tyreCheck()))
}

func TestFormatSummary_NoNotesNoFindings(t *testing.T) {
	c := models.Check{Summary: models.Summary{TotalItems: 2}}

	want := strings.Join([]string{
		"Vehicle check",
		"Date: -",
		"Vehicle: -",
		"Odometer: -",
		"Items: 0/2 done",
		"Issues: 0",
		"",
		"Findings:",
		"- none",
		"",
		report.Tip,
	}, "\n")

	assert.Equal(t, want, report.FormatSummary(c))
}

func TestFormatSummary_CapsFindings(t *testing.T) {
	var items []models.DraftItem
	for i := 0; i < 83; i++ {
		items = append(items, models.DraftItem{ID: fmt.Sprint(i), Label: fmt.Sprintf("Item %d", i), Severity: models.SeverityNote})
	}
	c := models.Check{Sections: []models.DraftSection{{Title: "S", Items: items}}}

	out := report.FormatSummary(c)

	assert.Equal(t, report.MaxFindings, strings.Count(out, "\n• "))
	assert.Contains(t, out, "• S: Item 79\n… 3 more finding(s) not shown\n\n"+report.Tip)
	assert.NotContains(t, out, "Item 80")
	assert.True(t, strings.HasSuffix(out, report.Tip))
}

func TestBuildEmail(t *testing.T) {
	e := report.BuildEmail(tyreCheck())

	assert.Equal(t, "Vehicle check 2026-10-19 - Van 1", e.Subject)
	assert.Equal(t, report.FormatSummary(tyreCheck()), e.Body)
	assert.Contains(t, e.HTML, "• Exterior: Tyres — Low pressure")
}
