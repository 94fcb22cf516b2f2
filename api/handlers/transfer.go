package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/linesmerrill/fleetcheck/api"
	"github.com/linesmerrill/fleetcheck/config"
	"github.com/linesmerrill/fleetcheck/models"
	"github.com/linesmerrill/fleetcheck/transfer"
	"github.com/linesmerrill/fleetcheck/workspace"
)

// Transfer exported for testing purposes
type Transfer struct {
	WS *workspace.Workspace
}

func writeExport(w http.ResponseWriter, b []byte, name string) {
	attachment(w, name)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

// ExportHandler returns the full export file
func (t Transfer) ExportHandler(w http.ResponseWriter, r *http.Request) {
	b, name, err := t.WS.ExportFull()
	if err != nil {
		config.ErrorStatus("failed to export", http.StatusInternalServerError, w, err)
		return
	}
	writeExport(w, b, name)
}

// ExportCheckHandler returns the export file of a single check
func (t Transfer) ExportCheckHandler(w http.ResponseWriter, r *http.Request) {
	b, name, err := t.WS.ExportCheck(mux.Vars(r)["check_id"])
	if errors.Is(err, workspace.ErrCheckNotFound) {
		config.ErrorStatus("failed to get check by ID", http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus("failed to export check", http.StatusInternalServerError, w, err)
		return
	}
	writeExport(w, b, name)
}

// ImportHandler applies an export file sent as the raw request body.
// ?replace_profile=true also replaces the profile on a full import.
func (t Transfer) ImportHandler(w http.ResponseWriter, r *http.Request) {
	replaceProfile, _ := strconv.ParseBool(r.URL.Query().Get("replace_profile"))

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		config.ErrorStatus("failed to read import", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithStoreTimeout(r.Context())
	defer cancel()
	kind, err := t.WS.Import(ctx, raw, replaceProfile)

	var parseErr *transfer.ParseError
	var shapeErr *transfer.InvalidPayloadError
	switch {
	case errors.As(err, &parseErr):
		config.ErrorStatus("failed to parse import", http.StatusBadRequest, w, err)
		return
	case errors.As(err, &shapeErr):
		config.ErrorStatus("invalid import payload", http.StatusUnprocessableEntity, w, err)
		return
	case err != nil:
		config.ErrorStatus("failed to import", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.ImportResponse{Kind: string(kind), Checks: len(t.WS.Checks(""))})
}
