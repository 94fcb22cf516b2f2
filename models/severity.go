package models

import (
	"errors"
	"strings"
)

// ErrInvalidSeverity is returned when a severity string is not ok, note or issue
var ErrInvalidSeverity = errors.New("invalid severity")

// Severity is the per item status of a draft or check
type Severity string

const (
	// SeverityOK nothing to report
	SeverityOK Severity = "ok"
	// SeverityNote worth noting, not a defect
	SeverityNote Severity = "note"
	// SeverityIssue a defect
	SeverityIssue Severity = "issue"
)

// ParseSeverity validates s
func ParseSeverity(s string) (Severity, error) {
	switch sev := Severity(strings.ToLower(strings.TrimSpace(s))); sev {
	case SeverityOK, SeverityNote, SeverityIssue:
		return sev, nil
	}
	return "", ErrInvalidSeverity
}

// IsFinding reports whether the severity is listed in reports
func (s Severity) IsFinding() bool {
	return s == SeverityNote || s == SeverityIssue
}
