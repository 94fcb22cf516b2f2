package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/linesmerrill/fleetcheck/config"
	"github.com/linesmerrill/fleetcheck/inspection"
	"github.com/linesmerrill/fleetcheck/models"
	"github.com/linesmerrill/fleetcheck/report"
	"github.com/linesmerrill/fleetcheck/workspace"
)

// Draft exported for testing purposes
type Draft struct {
	WS *workspace.Workspace
}

func draftResponse(d models.Draft) models.DraftResponse {
	return models.DraftResponse{Draft: d, Summary: inspection.Summarize(d.Sections)}
}

// TemplateHandler returns the checklist template
func (d Draft) TemplateHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, d.WS.Template())
}

// DraftHandler returns the live draft with its counters
func (d Draft) DraftHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, draftResponse(d.WS.Draft()))
}

// UpdateDraftHandler changes the date and vehicle of the draft
func (d Draft) UpdateDraftHandler(w http.ResponseWriter, r *http.Request) {
	var body models.DraftMetaRequest
	if err := decodeBody(w, r, &body); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}
	writeJSON(w, http.StatusOK, draftResponse(d.WS.SetDraftMeta(body.Date, body.VehicleID)))
}

// ResetDraftHandler starts a new draft from the template
func (d Draft) ResetDraftHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, draftResponse(d.WS.ResetDraft()))
}

// SetAllDoneHandler marks every item done or not done
func (d Draft) SetAllDoneHandler(w http.ResponseWriter, r *http.Request) {
	var body models.DoneRequest
	if err := decodeBody(w, r, &body); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}
	writeJSON(w, http.StatusOK, draftResponse(d.WS.SetAllDone(body.Done)))
}

// UpdateItemHandler patches one item of the draft. Unknown sections and items
// leave the draft unchanged.
func (d Draft) UpdateItemHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var patch inspection.ItemPatch
	if err := decodeBody(w, r, &patch); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}
	draft, err := d.WS.UpdateItem(vars["section_id"], vars["item_id"], patch)
	if err != nil {
		config.ErrorStatus("failed to update item", http.StatusBadRequest, w, err)
		return
	}
	writeJSON(w, http.StatusOK, draftResponse(draft))
}

// DraftReportHandler returns the printable view of the draft. Odometer, notes
// and vehicle label are taken from the query.
func (d Draft) DraftReportHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	view := report.BuildDraftView(d.WS.Profile(), d.WS.Draft(), q.Get("vehicleLabel"), q.Get("odometer"), q.Get("notes"))
	writeJSON(w, http.StatusOK, view)
}
