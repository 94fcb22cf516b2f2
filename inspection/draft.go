package inspection

import (
	"github.com/linesmerrill/fleetcheck/models"
)

// ItemPatch describes a change to a single draft item. Nil fields are left alone.
type ItemPatch struct {
	Severity *models.Severity `json:"severity,omitempty"`
	Note     *string          `json:"note,omitempty"`
	Done     *bool            `json:"done,omitempty"`
}

// NewDraft builds an untouched draft from the template
func NewDraft(t models.Template, date, vehicleID string) models.Draft {
	d := models.Draft{
		Date:      date,
		VehicleID: vehicleID,
		Sections:  make([]models.DraftSection, 0, len(t.Sections)),
	}
	for _, s := range t.Sections {
		ds := models.DraftSection{ID: s.ID, Title: s.Title, Items: make([]models.DraftItem, 0, len(s.Items))}
		for _, it := range s.Items {
			ds.Items = append(ds.Items, models.DraftItem{
				ID:       it.ID,
				Label:    it.Label,
				Severity: models.SeverityOK,
			})
		}
		d.Sections = append(d.Sections, ds)
	}
	return d
}

// CloneSections deep copies sections so the result shares nothing with the input
func CloneSections(sections []models.DraftSection) []models.DraftSection {
	if sections == nil {
		return nil
	}
	out := make([]models.DraftSection, len(sections))
	for i, s := range sections {
		out[i] = s
		out[i].Items = append([]models.DraftItem(nil), s.Items...)
	}
	return out
}

// UpdateItem returns a copy of d with one item patched. An unknown section or
// item returns d unchanged.
func UpdateItem(d models.Draft, sectionID, itemID string, patch ItemPatch) models.Draft {
	si, ii := locate(d, sectionID, itemID)
	if si < 0 {
		return d
	}
	out := d
	out.Sections = CloneSections(d.Sections)
	it := &out.Sections[si].Items[ii]
	if patch.Severity != nil {
		it.Severity = *patch.Severity
	}
	if patch.Note != nil {
		it.Note = *patch.Note
	}
	if patch.Done != nil {
		it.Done = *patch.Done
	}
	if it.Severity == models.SeverityOK {
		it.Note = ""
	}
	return out
}

// SetSeverity sets an item's severity. Setting ok clears the note in the same update.
func SetSeverity(d models.Draft, sectionID, itemID string, sev models.Severity) models.Draft {
	return UpdateItem(d, sectionID, itemID, ItemPatch{Severity: &sev})
}

// SetAllDone marks every item done or not done
func SetAllDone(d models.Draft, done bool) models.Draft {
	out := d
	out.Sections = CloneSections(d.Sections)
	for si := range out.Sections {
		for ii := range out.Sections[si].Items {
			out.Sections[si].Items[ii].Done = done
		}
	}
	return out
}

func locate(d models.Draft, sectionID, itemID string) (int, int) {
	for si, s := range d.Sections {
		if s.ID != sectionID {
			continue
		}
		for ii, it := range s.Items {
			if it.ID == itemID {
				return si, ii
			}
		}
		return -1, -1
	}
	return -1, -1
}

// TotalItems counts every item across sections
func TotalItems(sections []models.DraftSection) int {
	n := 0
	for _, s := range sections {
		n += len(s.Items)
	}
	return n
}

// DoneCount counts items marked done
func DoneCount(sections []models.DraftSection) int {
	return count(sections, func(it models.DraftItem) bool { return it.Done })
}

// IssueCount counts items with severity issue
func IssueCount(sections []models.DraftSection) int {
	return count(sections, func(it models.DraftItem) bool { return it.Severity == models.SeverityIssue })
}

// NoteCount counts items with severity note
func NoteCount(sections []models.DraftSection) int {
	return count(sections, func(it models.DraftItem) bool { return it.Severity == models.SeverityNote })
}

// Summarize computes all summary counters
func Summarize(sections []models.DraftSection) models.Summary {
	return models.Summary{
		TotalItems: TotalItems(sections),
		DoneCount:  DoneCount(sections),
		IssueCount: IssueCount(sections),
	}
}

func count(sections []models.DraftSection, match func(models.DraftItem) bool) int {
	n := 0
	for _, s := range sections {
		for _, it := range s.Items {
			if match(it) {
				n++
			}
		}
	}
	return n
}
