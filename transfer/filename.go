package transfer

import (
	"strings"
	"time"
)

// FullExportName names a full export file after the export date
func FullExportName(now time.Time) string {
	return "fleetcheck-export-" + now.Format("2006-01-02") + ".json"
}

// CheckExportName names the json export of a single check
func CheckExportName(date string) string {
	return "fleetcheck-check-" + SanitizeDate(date) + ".json"
}

// CheckTextName names the plain text download of a single check
func CheckTextName(date string) string {
	return "fleetcheck-check-" + SanitizeDate(date) + ".txt"
}

// SanitizeDate keeps only digits and dashes
func SanitizeDate(date string) string {
	clean := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, date)
	if clean == "" {
		return "undated"
	}
	return clean
}
