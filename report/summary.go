// Package report renders checks for people: the plain text summary shared by
// the copy, send and download actions, the mail built from it, and the data
// behind the printable report.
package report

import (
	"fmt"
	"strings"

	"github.com/linesmerrill/fleetcheck/models"
	templates "github.com/linesmerrill/fleetcheck/templates/html"
)

// MaxFindings caps the findings listed in a summary
const MaxFindings = 80

// Tip closes every summary
const Tip = "Tip: attach the exported JSON file to keep the full check record."

func orDash(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "-"
	}
	return s
}

// Findings lists every note or issue item as "<section>: <label>", followed by its note when one is set.
func Findings(sections []models.DraftSection) []string {
	var out []string
	for _, s := range sections {
		for _, it := range s.Items {
			if !it.Severity.IsFinding() {
				continue
			}
			line := s.Title + ": " + it.Label
			if note := strings.TrimSpace(it.Note); note != "" {
				line += " — " + note
			}
			out = append(out, line)
		}
	}
	return out
}

// FormatSummary renders the plain text summary of a check
func FormatSummary(c models.Check) string {
	lines := []string{
		"Vehicle check",
		"Date: " + orDash(c.Date),
		"Vehicle: " + orDash(c.VehicleLabel),
		"Odometer: " + orDash(c.Odometer),
		fmt.Sprintf("Items: %d/%d done", c.Summary.DoneCount, c.Summary.TotalItems),
		fmt.Sprintf("Issues: %d", c.Summary.IssueCount),
		"",
	}

	if notes := strings.TrimSpace(c.GeneralNotes); notes != "" {
		lines = append(lines, "General notes:", notes, "")
	}

	lines = append(lines, "Findings:")
	findings := Findings(c.Sections)
	if len(findings) == 0 {
		lines = append(lines, "- none")
	}
	shown := findings
	if len(shown) > MaxFindings {
		shown = shown[:MaxFindings]
	}
	for _, f := range shown {
		lines = append(lines, "• "+f)
	}
	if extra := len(findings) - len(shown); extra > 0 {
		lines = append(lines, fmt.Sprintf("… %d more finding(s) not shown", extra))
	}

	lines = append(lines, "", Tip)
	return strings.Join(lines, "\n")
}

// BuildEmail builds the subject and bodies used to share a check
func BuildEmail(c models.Check) models.Email {
	subject := fmt.Sprintf("Vehicle check %s - %s", orDash(c.Date), orDash(c.VehicleLabel))
	body := FormatSummary(c)
	return models.Email{
		Subject: subject,
		Body:    body,
		HTML:    templates.RenderCheckEmail(subject, body),
	}
}
