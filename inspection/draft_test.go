package inspection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linesmerrill/fleetcheck/inspection"
	"github.com/linesmerrill/fleetcheck/models"
)

func TestNewDraft_MirrorsTemplate(t *testing.T) {
	tmpl := inspection.DefaultTemplate()
	d := inspection.NewDraft(tmpl, "2026-10-19", "b-ab-123")

	assert.Equal(t, "2026-10-19", d.Date)
	assert.Equal(t, "b-ab-123", d.VehicleID)
	assert.Len(t, d.Sections, len(tmpl.Sections))
	for si, s := range tmpl.Sections {
		assert.Equal(t, s.ID, d.Sections[si].ID)
		assert.Equal(t, s.Title, d.Sections[si].Title)
		assert.Len(t, d.Sections[si].Items, len(s.Items))
		for ii, it := range s.Items {
			got := d.Sections[si].Items[ii]
			assert.Equal(t, it.ID, got.ID)
			assert.Equal(t, it.Label, got.Label)
			assert.Equal(t, models.SeverityOK, got.Severity)
			assert.False(t, got.Done)
			assert.Empty(t, got.Note)
		}
	}
}

func TestSetSeverity_OKClearsNote(t *testing.T) {
	d := inspection.NewDraft(inspection.DefaultTemplate(), "", "")
	note := "Low pressure"
	issue := models.SeverityIssue
	d = inspection.UpdateItem(d, "exterior", "tyres", inspection.ItemPatch{Severity: &issue, Note: &note})
	assert.Equal(t, "Low pressure", d.Sections[0].Items[0].Note)

	d = inspection.SetSeverity(d, "exterior", "tyres", models.SeverityOK)

	assert.Equal(t, models.SeverityOK, d.Sections[0].Items[0].Severity)
	assert.Equal(t, "", d.Sections[0].Items[0].Note)
}

func TestUpdateItem_NoteOnOKItemIsDropped(t *testing.T) {
	d := inspection.NewDraft(inspection.DefaultTemplate(), "", "")
	note := "ignored"

	d = inspection.UpdateItem(d, "exterior", "tyres", inspection.ItemPatch{Note: &note})

	assert.Equal(t, "", d.Sections[0].Items[0].Note)
}

func TestUpdateItem_DoesNotMutateInput(t *testing.T) {
	before := inspection.NewDraft(inspection.DefaultTemplate(), "", "")
	done := true

	after := inspection.UpdateItem(before, "cabin", "horn", inspection.ItemPatch{Done: &done})

	assert.False(t, before.Sections[2].Items[2].Done)
	assert.True(t, after.Sections[2].Items[2].Done)
	assert.Equal(t, 1, inspection.DoneCount(after.Sections))
}

func TestUpdateItem_LookupMissIsNoop(t *testing.T) {
	d := inspection.NewDraft(inspection.DefaultTemplate(), "", "")
	done := true

	assert.Equal(t, d, inspection.UpdateItem(d, "nope", "tyres", inspection.ItemPatch{Done: &done}))
	assert.Equal(t, d, inspection.UpdateItem(d, "exterior", "nope", inspection.ItemPatch{Done: &done}))
	// item ids are scoped to their section
	assert.Equal(t, d, inspection.UpdateItem(d, "exterior", "oil", inspection.ItemPatch{Done: &done}))
}

func TestSummaryCounters(t *testing.T) {
	sections := []models.DraftSection{
		{ID: "a", Items: []models.DraftItem{
			{ID: "1", Severity: models.SeverityOK, Done: true},
			{ID: "2", Severity: models.SeverityIssue},
			{ID: "3", Severity: models.SeverityNote, Done: true},
			{ID: "4", Severity: models.SeverityOK},
		}},
		{ID: "b", Items: []models.DraftItem{
			{ID: "5", Severity: models.SeverityIssue, Done: true},
		}},
	}

	assert.Equal(t, 5, inspection.TotalItems(sections))
	assert.Equal(t, 3, inspection.DoneCount(sections))
	assert.Equal(t, 2, inspection.IssueCount(sections))
	assert.Equal(t, 1, inspection.NoteCount(sections))
	assert.Equal(t, models.Summary{TotalItems: 5, DoneCount: 3, IssueCount: 2}, inspection.Summarize(sections))
}

func TestSetAllDone(t *testing.T) {
	d := inspection.NewDraft(inspection.DefaultTemplate(), "", "")

	all := inspection.SetAllDone(d, true)
	assert.Equal(t, inspection.TotalItems(all.Sections), inspection.DoneCount(all.Sections))
	assert.Equal(t, 0, inspection.DoneCount(d.Sections))

	none := inspection.SetAllDone(all, false)
	assert.Equal(t, 0, inspection.DoneCount(none.Sections))
}
