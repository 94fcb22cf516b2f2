// Package workspace owns the session state of the app: the profile, the app
// record with its check history and the live draft. It is the only place that
// combines the pure inspection and transfer functions with the store.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/linesmerrill/fleetcheck/databases"
	"github.com/linesmerrill/fleetcheck/inspection"
	"github.com/linesmerrill/fleetcheck/metrics"
	"github.com/linesmerrill/fleetcheck/models"
	"github.com/linesmerrill/fleetcheck/transfer"
)

// DateLayout is the layout of draft and check dates
const DateLayout = "2006-01-02"

var (
	// ErrCheckNotFound is returned when a check id is unknown
	ErrCheckNotFound = errors.New("check not found")
	// ErrVehicleNotFound is returned when a vehicle id is unknown
	ErrVehicleNotFound = errors.New("vehicle not found")
)

// Option configures a Workspace
type Option func(*Workspace)

// WithClock replaces the wall clock
func WithClock(now func() time.Time) Option {
	return func(w *Workspace) { w.now = now }
}

// WithIDs replaces the check id generator
func WithIDs(newID func() string) Option {
	return func(w *Workspace) { w.newID = newID }
}

// WithSuffix replaces the vehicle id tiebreaker
func WithSuffix(suffix inspection.SuffixFunc) Option {
	return func(w *Workspace) { w.suffix = suffix }
}

// Workspace serializes every read and mutation behind one mutex. Mutations are
// written through to the store before the method returns.
type Workspace struct {
	app      databases.AppDatabase
	profiles databases.ProfileDatabase

	now    func() time.Time
	newID  func() string
	suffix inspection.SuffixFunc

	mu      sync.Mutex
	profile models.Profile
	state   models.AppState
	draft   models.Draft
}

// New loads the profile and app record and starts a fresh draft. A stored
// template with an outdated revision is replaced and written back right away.
func New(ctx context.Context, app databases.AppDatabase, profiles databases.ProfileDatabase, opts ...Option) *Workspace {
	c := inspection.NewCommitter()
	w := &Workspace{
		app:      app,
		profiles: profiles,
		now:      c.Now,
		newID:    c.NewID,
		suffix:   inspection.RandomSuffix,
	}
	for _, opt := range opts {
		opt(w)
	}

	stored := app.Load(ctx)
	w.state = inspection.LoadAppState(stored, w.now())
	if stored == nil || stored.Template.Revision != inspection.CurrentRevision {
		if stored != nil {
			zap.S().Infow("replacing outdated template",
				"storedRevision", stored.Template.Revision,
				"currentRevision", inspection.CurrentRevision)
		}
		w.state = app.Save(ctx, w.state)
	}

	w.profile = profiles.Load(ctx)
	active := ""
	if len(w.profile.Vehicles) > 0 {
		active = w.profile.Vehicles[0].ID
	}
	w.draft = inspection.NewDraft(w.state.Template, w.today(), active)
	return w
}

func (w *Workspace) today() string {
	return w.now().Format(DateLayout)
}

func (w *Workspace) committer() *inspection.Committer {
	return &inspection.Committer{Now: w.now, NewID: w.newID}
}

func (w *Workspace) saveProfile(ctx context.Context) {
	w.profile = w.profiles.Save(ctx, w.profile)
}

func (w *Workspace) saveState(ctx context.Context) {
	w.state = w.app.Save(ctx, w.state)
}

// Profile returns a copy of the profile
func (w *Workspace) Profile() models.Profile {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.profile.Clone()
}

// UpdateProfile replaces org, user, language and logo. Vehicles are managed
// through the vehicle methods and are left alone.
func (w *Workspace) UpdateProfile(ctx context.Context, p models.Profile) (models.Profile, error) {
	lang, err := models.ParseLanguage(string(p.Language))
	if err != nil {
		return models.Profile{}, fmt.Errorf("update profile: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.profile.Org = p.Org
	w.profile.User = p.User
	w.profile.Language = lang
	w.profile.Logo = p.Logo
	w.saveProfile(ctx)
	return w.profile.Clone(), nil
}

// AddVehicle registers a vehicle under a derived id. The first vehicle added
// becomes the active one.
func (w *Workspace) AddVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	vehicles, added, err := inspection.AddVehicle(w.profile.Vehicles, v, w.suffix)
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("add vehicle: %w", err)
	}
	w.profile.Vehicles = vehicles
	if w.draft.VehicleID == "" {
		w.draft.VehicleID = added.ID
	}
	w.saveProfile(ctx)
	return added, nil
}

// UpdateVehicle replaces the fields of an existing vehicle
func (w *Workspace) UpdateVehicle(ctx context.Context, id string, v models.Vehicle) (models.Vehicle, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.profile.FindVehicle(id); !ok {
		return models.Vehicle{}, ErrVehicleNotFound
	}
	vehicles, err := inspection.UpdateVehicle(w.profile.Vehicles, id, v)
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("update vehicle: %w", err)
	}
	w.profile.Vehicles = vehicles
	w.saveProfile(ctx)
	updated, _ := w.profile.FindVehicle(id)
	return updated, nil
}

// DeleteVehicle removes a vehicle. When it was the active vehicle of the draft
// the draft moves to the first remaining vehicle, or none. Checks keep their
// vehicle snapshot.
func (w *Workspace) DeleteVehicle(ctx context.Context, id string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.profile.FindVehicle(id); !ok {
		return
	}
	w.profile.Vehicles, w.draft.VehicleID = inspection.DeleteVehicle(w.profile.Vehicles, id, w.draft.VehicleID)
	w.saveProfile(ctx)
}

// Template returns the current checklist template
func (w *Workspace) Template() models.Template {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Template
}

// Draft returns a copy of the live draft
func (w *Workspace) Draft() models.Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.copyDraft()
}

func (w *Workspace) copyDraft() models.Draft {
	d := w.draft
	d.Sections = inspection.CloneSections(w.draft.Sections)
	return d
}

// ResetDraft throws the live draft away and starts a new one for today,
// keeping the active vehicle.
func (w *Workspace) ResetDraft() models.Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft = inspection.NewDraft(w.state.Template, w.today(), w.draft.VehicleID)
	return w.copyDraft()
}

// SetDraftMeta changes the date and/or the vehicle of the draft. Nil leaves a
// field alone; an unknown vehicle id is ignored and "" clears the vehicle.
func (w *Workspace) SetDraftMeta(date, vehicleID *string) models.Draft {
	w.mu.Lock()
	defer w.mu.Unlock()

	if date != nil {
		w.draft.Date = *date
	}
	if vehicleID != nil {
		if _, ok := w.profile.FindVehicle(*vehicleID); ok || *vehicleID == "" {
			w.draft.VehicleID = *vehicleID
		} else {
			zap.S().Debugw("ignoring unknown vehicle for draft", "vehicleId", *vehicleID)
		}
	}
	return w.copyDraft()
}

// UpdateItem patches one draft item. An unknown section or item is a no-op.
func (w *Workspace) UpdateItem(sectionID, itemID string, patch inspection.ItemPatch) (models.Draft, error) {
	if patch.Severity != nil {
		sev, err := models.ParseSeverity(string(*patch.Severity))
		if err != nil {
			return models.Draft{}, fmt.Errorf("update item: %w", err)
		}
		patch.Severity = &sev
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft = inspection.UpdateItem(w.draft, sectionID, itemID, patch)
	return w.copyDraft(), nil
}

// SetAllDone marks every draft item done or not done
func (w *Workspace) SetAllDone(done bool) models.Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft = inspection.SetAllDone(w.draft, done)
	return w.copyDraft()
}

// SaveCheck commits the draft to the front of the history and starts a fresh
// draft for the same vehicle.
func (w *Workspace) SaveCheck(ctx context.Context, odometer, generalNotes, vehicleLabel string) models.Check {
	w.mu.Lock()
	defer w.mu.Unlock()

	check := w.committer().Commit(w.draft, w.profile, vehicleLabel, odometer, generalNotes)
	w.state.Checks = inspection.Append(w.state.Checks, check)
	w.saveState(ctx)
	metrics.CheckSaved()
	zap.S().Infow("saved check", "checkId", check.ID, "vehicleId", check.VehicleID,
		"issues", check.Summary.IssueCount)

	w.draft = inspection.NewDraft(w.state.Template, w.today(), w.draft.VehicleID)
	return check
}

// Checks returns the history newest first, optionally only for one vehicle
func (w *Workspace) Checks(vehicleID string) []models.Check {
	w.mu.Lock()
	defer w.mu.Unlock()
	if vehicleID != "" {
		return inspection.FilterByVehicle(w.state.Checks, vehicleID)
	}
	return append([]models.Check{}, w.state.Checks...)
}

// Check looks up one check
func (w *Workspace) Check(id string) (models.Check, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return inspection.FindByID(w.state.Checks, id)
}

// DeleteCheck removes a check for good. Unknown ids are a no-op.
func (w *Workspace) DeleteCheck(ctx context.Context, id string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := inspection.FindByID(w.state.Checks, id); !ok {
		return
	}
	w.state.Checks = inspection.Remove(w.state.Checks, id)
	w.saveState(ctx)
	zap.S().Infow("deleted check", "checkId", id)
}

// ExportFull renders the full export file and its suggested file name
func (w *Workspace) ExportFull() ([]byte, string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	b, err := transfer.EncodeFull(w.profile, w.state, now)
	if err != nil {
		return nil, "", fmt.Errorf("encode full export: %w", err)
	}
	return b, transfer.FullExportName(now), nil
}

// ExportCheck renders a single check export and its suggested file name
func (w *Workspace) ExportCheck(id string) ([]byte, string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	check, ok := inspection.FindByID(w.state.Checks, id)
	if !ok {
		return nil, "", ErrCheckNotFound
	}
	b, err := transfer.EncodeSingle(w.profile, check, w.now())
	if err != nil {
		return nil, "", fmt.Errorf("encode check export: %w", err)
	}
	return b, transfer.CheckExportName(check.Date), nil
}

// Import applies an export file. A full export replaces the history (and the
// profile when replaceProfile is set); a single check export is upserted.
// Nothing changes when raw cannot be decoded.
func (w *Workspace) Import(ctx context.Context, raw []byte, replaceProfile bool) (transfer.Kind, error) {
	env, err := transfer.Decode(raw)
	if err != nil {
		metrics.ImportAttempt("unknown", "rejected")
		zap.S().Warnw("rejected import", "error", err)
		return "", err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	switch e := env.(type) {
	case *transfer.Full:
		state, profile := transfer.ApplyFull(w.state, w.profile, e, replaceProfile)
		w.state = state
		if replaceProfile && e.Profile != nil {
			w.profile = profile
			if _, ok := w.profile.FindVehicle(w.draft.VehicleID); !ok {
				w.draft.VehicleID = ""
				if len(w.profile.Vehicles) > 0 {
					w.draft.VehicleID = w.profile.Vehicles[0].ID
				}
			}
			w.saveProfile(ctx)
		}
		w.saveState(ctx)
		zap.S().Infow("imported full export", "checks", len(w.state.Checks), "profileReplaced", replaceProfile && e.Profile != nil)
	case *transfer.Single:
		w.state = transfer.ApplySingle(w.state, e)
		w.saveState(ctx)
		zap.S().Infow("imported check", "checkId", e.Check.ID)
	}
	metrics.ImportAttempt(string(env.Kind()), "ok")
	return env.Kind(), nil
}
