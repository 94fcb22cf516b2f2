package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/fleetcheck/api"
	"github.com/linesmerrill/fleetcheck/config"
	"github.com/linesmerrill/fleetcheck/mailer"
	"github.com/linesmerrill/fleetcheck/models"
	"github.com/linesmerrill/fleetcheck/report"
	"github.com/linesmerrill/fleetcheck/transfer"
	"github.com/linesmerrill/fleetcheck/workspace"
)

var errMailDisabled = errors.New("mail is not configured")

// Check exported for testing purposes
type Check struct {
	WS     *workspace.Workspace
	Mailer mailer.Mailer
}

func (c Check) lookup(w http.ResponseWriter, r *http.Request) (models.Check, bool) {
	checkID := mux.Vars(r)["check_id"]
	check, ok := c.WS.Check(checkID)
	if !ok {
		config.ErrorStatus("failed to get check by ID", http.StatusNotFound, w, fmt.Errorf("%w: %s", workspace.ErrCheckNotFound, checkID))
	}
	return check, ok
}

// CheckHandler returns the saved checks, newest first. ?vehicle= filters by vehicle id.
func (c Check) CheckHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.WS.Checks(r.URL.Query().Get("vehicle")))
}

// CreateCheckHandler saves the draft as a new check
func (c Check) CreateCheckHandler(w http.ResponseWriter, r *http.Request) {
	var body models.SaveCheckRequest
	if r.ContentLength != 0 {
		if err := decodeBody(w, r, &body); err != nil && !errors.Is(err, io.EOF) {
			config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
			return
		}
	}

	ctx, cancel := api.WithStoreTimeout(r.Context())
	defer cancel()
	check := c.WS.SaveCheck(ctx, strings.TrimSpace(body.Odometer), strings.TrimSpace(body.GeneralNotes), strings.TrimSpace(body.VehicleLabel))
	writeJSON(w, http.StatusCreated, check)
}

// CheckByIDHandler returns a check by ID
func (c Check) CheckByIDHandler(w http.ResponseWriter, r *http.Request) {
	check, ok := c.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, check)
}

// DeleteCheckHandler deletes a check by ID. Deleting an unknown id succeeds.
func (c Check) DeleteCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithStoreTimeout(r.Context())
	defer cancel()
	c.WS.DeleteCheck(ctx, mux.Vars(r)["check_id"])
	w.WriteHeader(http.StatusNoContent)
}

// CheckSummaryHandler returns the plain text summary of a check. With
// ?download=1 it is served as a .txt attachment.
func (c Check) CheckSummaryHandler(w http.ResponseWriter, r *http.Request) {
	check, ok := c.lookup(w, r)
	if !ok {
		return
	}
	if r.URL.Query().Get("download") == "1" {
		attachment(w, transfer.CheckTextName(check.Date))
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, report.FormatSummary(check))
}

// CheckEmailHandler returns the subject and bodies used to share a check
func (c Check) CheckEmailHandler(w http.ResponseWriter, r *http.Request) {
	check, ok := c.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, report.BuildEmail(check))
}

// CheckReportHandler returns the printable view of a check
func (c Check) CheckReportHandler(w http.ResponseWriter, r *http.Request) {
	check, ok := c.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, report.BuildView(c.WS.Profile(), check))
}

// SendCheckHandler mails the summary of a check
func (c Check) SendCheckHandler(w http.ResponseWriter, r *http.Request) {
	if c.Mailer == nil {
		config.ErrorStatus("failed to send check", http.StatusServiceUnavailable, w, errMailDisabled)
		return
	}
	var body models.SendCheckRequest
	if err := decodeBody(w, r, &body); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}
	if strings.TrimSpace(body.To) == "" {
		config.ErrorStatus("failed to send check", http.StatusBadRequest, w, errors.New("recipient is required"))
		return
	}
	check, ok := c.lookup(w, r)
	if !ok {
		return
	}

	if err := c.Mailer.Send(r.Context(), body.To, report.BuildEmail(check)); err != nil {
		config.ErrorStatus("failed to send check", http.StatusBadGateway, w, err)
		return
	}
	zap.S().Infow("sent check", "checkId", check.ID)
	w.WriteHeader(http.StatusNoContent)
}
