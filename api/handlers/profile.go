package handlers

import (
	"errors"
	"net/http"

	"github.com/linesmerrill/fleetcheck/api"
	"github.com/linesmerrill/fleetcheck/config"
	"github.com/linesmerrill/fleetcheck/models"
	"github.com/linesmerrill/fleetcheck/workspace"
)

// Profile exported for testing purposes
type Profile struct {
	WS *workspace.Workspace
}

// ProfileHandler returns the profile including its vehicles
func (p Profile) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, p.WS.Profile())
}

// UpdateProfileHandler replaces org, user, language and logo
func (p Profile) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var body models.Profile
	if err := decodeBody(w, r, &body); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithStoreTimeout(r.Context())
	defer cancel()
	updated, err := p.WS.UpdateProfile(ctx, body)
	if errors.Is(err, models.ErrInvalidLanguage) {
		config.ErrorStatus("failed to update profile", http.StatusBadRequest, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus("failed to update profile", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
