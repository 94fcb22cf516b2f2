// Package transfer encodes and decodes the export files and applies imports
// to the app state.
package transfer

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/linesmerrill/fleetcheck/inspection"
	"github.com/linesmerrill/fleetcheck/models"
)

// Kind tells the envelope variants apart
type Kind string

const (
	// KindFull is a full export: profile plus the whole app record
	KindFull Kind = "full"
	// KindSingle is a single check export
	KindSingle Kind = "single"
)

// Envelope is a decoded import. It is either a *Full or a *Single.
type Envelope interface {
	Kind() Kind
	isEnvelope()
}

// Full is a decoded full export
type Full struct {
	ExportedAt time.Time
	// Profile is nil when the file carried none
	Profile *models.Profile
	Data    models.AppState
}

// Single is a decoded single check export
type Single struct {
	ExportedAt time.Time
	Profile    *models.Profile
	Check      models.Check
}

// Kind implements Envelope
func (*Full) Kind() Kind { return KindFull }

// Kind implements Envelope
func (*Single) Kind() Kind { return KindSingle }

func (*Full) isEnvelope()   {}
func (*Single) isEnvelope() {}

// EncodeFull renders the full export file
func EncodeFull(p models.Profile, state models.AppState, now time.Time) ([]byte, error) {
	if state.Checks == nil {
		state.Checks = []models.Check{}
	}
	if p.Vehicles == nil {
		p.Vehicles = []models.Vehicle{}
	}
	return marshal(models.FullExport{ExportedAt: now.UTC(), Profile: p, Data: state})
}

// EncodeSingle renders the export file for one check
func EncodeSingle(p models.Profile, check models.Check, now time.Time) ([]byte, error) {
	if p.Vehicles == nil {
		p.Vehicles = []models.Vehicle{}
	}
	return marshal(models.CheckExport{ExportedAt: now.UTC(), Profile: p, Check: check})
}

func marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// shape captures just enough of an import to classify it
type shape struct {
	ExportedAt json.RawMessage `json:"exportedAt"`
	Profile    json.RawMessage `json:"profile"`
	Data       json.RawMessage `json:"data"`
	Check      json.RawMessage `json:"check"`
}

// checks returns the raw data.checks value, nil when data is not an object
func (p shape) checks() json.RawMessage {
	if jsonKind(p.Data) != '{' {
		return nil
	}
	var data struct {
		Checks json.RawMessage `json:"checks"`
	}
	if err := json.Unmarshal(p.Data, &data); err != nil {
		return nil
	}
	return data.Checks
}

// Decode parses raw into a Full or Single envelope. Malformed JSON yields a
// *ParseError, anything else that does not match a known shape an
// *InvalidPayloadError.
func Decode(raw []byte) (Envelope, error) {
	var top interface{}
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, &ParseError{Err: err}
	}
	if _, ok := top.(map[string]interface{}); !ok {
		return nil, &InvalidPayloadError{Reason: "unrecognized import shape"}
	}

	var p shape
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, &InvalidPayloadError{Reason: "unrecognized import shape", Err: err}
	}

	switch {
	case present(p.checks()):
		return decodeFull(raw, p)
	case present(p.Check):
		return decodeSingle(raw, p)
	}
	return nil, &InvalidPayloadError{Reason: "unrecognized import shape"}
}

func decodeFull(raw []byte, p shape) (Envelope, error) {
	if jsonKind(p.checks()) != '[' {
		return nil, &InvalidPayloadError{Reason: "data.checks is not an array"}
	}
	var doc struct {
		Data models.AppState `json:"data"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &InvalidPayloadError{Reason: "malformed full export", Err: err}
	}
	profile, err := decodeProfile(p.Profile)
	if err != nil {
		return nil, err
	}
	if doc.Data.Checks == nil {
		doc.Data.Checks = []models.Check{}
	}
	return &Full{ExportedAt: exportedAt(p.ExportedAt), Profile: profile, Data: doc.Data}, nil
}

func decodeSingle(raw []byte, p shape) (Envelope, error) {
	if jsonKind(p.Check) != '{' {
		return nil, &InvalidPayloadError{Reason: "check is not an object"}
	}
	var doc struct {
		Check models.Check `json:"check"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &InvalidPayloadError{Reason: "malformed check export", Err: err}
	}
	if doc.Check.ID == "" {
		return nil, &InvalidPayloadError{Reason: "check.id is missing"}
	}
	profile, err := decodeProfile(p.Profile)
	if err != nil {
		return nil, err
	}
	return &Single{ExportedAt: exportedAt(p.ExportedAt), Profile: profile, Check: doc.Check}, nil
}

func decodeProfile(raw json.RawMessage) (*models.Profile, error) {
	if jsonKind(raw) != '{' {
		return nil, nil
	}
	var p models.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, &InvalidPayloadError{Reason: "malformed profile", Err: err}
	}
	lang, err := models.ParseLanguage(string(p.Language))
	if err != nil {
		return nil, &InvalidPayloadError{Reason: "profile.language is not EN or DE", Err: err}
	}
	p.Language = lang

	vehicles := make([]models.Vehicle, 0, len(p.Vehicles))
	taken := make(map[string]bool, len(p.Vehicles))
	for _, v := range p.Vehicles {
		if !models.ValidFuelType(v.FuelType) {
			return nil, &InvalidPayloadError{Reason: "profile vehicle " + strconv.Quote(v.ID), Err: models.ErrInvalidFuelType}
		}
		if v.ID == "" || taken[v.ID] {
			v.ID = inspection.VehicleID(v, taken, nil)
		}
		taken[v.ID] = true
		vehicles = append(vehicles, v)
	}
	p.Vehicles = vehicles
	return &p, nil
}

// exportedAt is informational only, an unreadable stamp is ignored
func exportedAt(raw json.RawMessage) time.Time {
	var t time.Time
	if jsonKind(raw) == '"' {
		_ = json.Unmarshal(raw, &t)
	}
	return t
}

// present reports whether a field was in the document with a non null value
func present(raw json.RawMessage) bool {
	k := jsonKind(raw)
	return k != 0 && k != 'n'
}

// jsonKind returns the first significant byte of a raw value, 0 when empty
func jsonKind(raw json.RawMessage) byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}
