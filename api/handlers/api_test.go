package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/fleetcheck/api/testhelpers"
	"github.com/linesmerrill/fleetcheck/config"
	"github.com/linesmerrill/fleetcheck/models"
)

func newApp(t *testing.T) *App {
	t.Helper()
	a := &App{
		Config:    *config.Default(),
		Workspace: testhelpers.NewWorkspace(testhelpers.NewStore()),
	}
	a.Router = a.New()
	return a
}

func executeRequest(a *App, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)
	return rr
}

func checkResponseCode(t *testing.T, expected, actual int) {
	if expected != actual {
		t.Errorf("Expected response code %d. Got %d\n", expected, actual)
	}
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v), rr.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	a := newApp(t)
	req, _ := http.NewRequest("GET", "/asdf", nil)
	response := executeRequest(a, req)

	checkResponseCode(t, http.StatusNotFound, response.Code)
}

func TestHealthCheckRoute(t *testing.T) {
	a := newApp(t)
	req, _ := http.NewRequest("GET", "/health", nil)
	response := executeRequest(a, req)

	checkResponseCode(t, http.StatusOK, response.Code)

	if !strings.Contains(response.Body.String(), "alive") {
		t.Errorf("Expected 'alive' in the reponse. Got '%s'", response.Body.String())
	}
}

func TestMetricsRoute(t *testing.T) {
	a := newApp(t)
	executeRequest(a, httptest.NewRequest("GET", "/api/v1/template", nil))

	response := executeRequest(a, httptest.NewRequest("GET", "/metrics", nil))
	checkResponseCode(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Body.String(), "fleetcheck_http_requests_total")
}

func TestProfileRoutes(t *testing.T) {
	a := newApp(t)

	response := executeRequest(a, httptest.NewRequest("PUT", "/api/v1/profile",
		strings.NewReader(`{"org":"Acme","user":"Sam","language":"de"}`)))
	checkResponseCode(t, http.StatusOK, response.Code)

	var p models.Profile
	response = executeRequest(a, httptest.NewRequest("GET", "/api/v1/profile", nil))
	decode(t, response, &p)
	assert.Equal(t, "Acme", p.Org)
	assert.Equal(t, models.LanguageDE, p.Language)
	assert.Equal(t, []models.Vehicle{}, p.Vehicles)

	response = executeRequest(a, httptest.NewRequest("PUT", "/api/v1/profile", strings.NewReader(`{"language":"FR"}`)))
	checkResponseCode(t, http.StatusBadRequest, response.Code)

	response = executeRequest(a, httptest.NewRequest("PUT", "/api/v1/profile", strings.NewReader(`{`)))
	checkResponseCode(t, http.StatusBadRequest, response.Code)
}

func TestVehicleRoutes(t *testing.T) {
	a := newApp(t)

	response := executeRequest(a, httptest.NewRequest("POST", "/api/v1/vehicles",
		strings.NewReader(`{"label":"Van 1","plate":"B-AB 123","fuelType":"Diesel"}`)))
	checkResponseCode(t, http.StatusCreated, response.Code)
	var created models.Vehicle
	decode(t, response, &created)
	assert.Equal(t, "b-ab-123", created.ID)

	response = executeRequest(a, httptest.NewRequest("POST", "/api/v1/vehicles",
		strings.NewReader(`{"plate":"X","fuelType":"Steam"}`)))
	checkResponseCode(t, http.StatusBadRequest, response.Code)

	response = executeRequest(a, httptest.NewRequest("PUT", "/api/v1/vehicles/b-ab-123",
		strings.NewReader(`{"label":"Van One","plate":"B-AB 123"}`)))
	checkResponseCode(t, http.StatusOK, response.Code)

	response = executeRequest(a, httptest.NewRequest("PUT", "/api/v1/vehicles/ghost", strings.NewReader(`{}`)))
	checkResponseCode(t, http.StatusNotFound, response.Code)

	var vehicles []models.Vehicle
	response = executeRequest(a, httptest.NewRequest("GET", "/api/v1/vehicles", nil))
	decode(t, response, &vehicles)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "Van One", vehicles[0].Label)

	response = executeRequest(a, httptest.NewRequest("DELETE", "/api/v1/vehicles/b-ab-123", nil))
	checkResponseCode(t, http.StatusNoContent, response.Code)
	response = executeRequest(a, httptest.NewRequest("DELETE", "/api/v1/vehicles/b-ab-123", nil))
	checkResponseCode(t, http.StatusNoContent, response.Code)
}

func TestDraftRoutes(t *testing.T) {
	a := newApp(t)

	var resp models.DraftResponse
	response := executeRequest(a, httptest.NewRequest("GET", "/api/v1/draft", nil))
	checkResponseCode(t, http.StatusOK, response.Code)
	decode(t, response, &resp)
	assert.Equal(t, models.Summary{TotalItems: 30}, resp.Summary)
	assert.Equal(t, "2026-10-19", resp.Draft.Date)

	response = executeRequest(a, httptest.NewRequest("PATCH", "/api/v1/draft/sections/exterior/items/tyres",
		strings.NewReader(`{"severity":"issue","note":"worn","done":true}`)))
	checkResponseCode(t, http.StatusOK, response.Code)
	decode(t, response, &resp)
	assert.Equal(t, models.Summary{TotalItems: 30, DoneCount: 1, IssueCount: 1}, resp.Summary)
	assert.Equal(t, "worn", resp.Draft.Sections[0].Items[0].Note)

	response = executeRequest(a, httptest.NewRequest("PATCH", "/api/v1/draft/sections/exterior/items/tyres",
		strings.NewReader(`{"severity":"ok"}`)))
	decode(t, response, &resp)
	assert.Equal(t, "", resp.Draft.Sections[0].Items[0].Note)

	response = executeRequest(a, httptest.NewRequest("PATCH", "/api/v1/draft/sections/exterior/items/tyres",
		strings.NewReader(`{"severity":"broken"}`)))
	checkResponseCode(t, http.StatusBadRequest, response.Code)

	response = executeRequest(a, httptest.NewRequest("PATCH", "/api/v1/draft/sections/ghost/items/tyres",
		strings.NewReader(`{"done":false}`)))
	checkResponseCode(t, http.StatusOK, response.Code)

	response = executeRequest(a, httptest.NewRequest("POST", "/api/v1/draft/done", strings.NewReader(`{"done":true}`)))
	decode(t, response, &resp)
	assert.Equal(t, 30, resp.Summary.DoneCount)

	response = executeRequest(a, httptest.NewRequest("PATCH", "/api/v1/draft", strings.NewReader(`{"date":"2026-10-01"}`)))
	decode(t, response, &resp)
	assert.Equal(t, "2026-10-01", resp.Draft.Date)

	var view models.ReportView
	response = executeRequest(a, httptest.NewRequest("GET", "/api/v1/draft/report?odometer=1200&vehicleLabel=Pool", nil))
	decode(t, response, &view)
	assert.Equal(t, "1200", view.Odometer)
	assert.Equal(t, "Pool", view.VehicleLabel)
	assert.Equal(t, 30, view.Totals.DoneCount)

	response = executeRequest(a, httptest.NewRequest("POST", "/api/v1/draft/reset", nil))
	decode(t, response, &resp)
	assert.Equal(t, models.Summary{TotalItems: 30}, resp.Summary)
	assert.Equal(t, "2026-10-19", resp.Draft.Date)

	var tpl models.Template
	response = executeRequest(a, httptest.NewRequest("GET", "/api/v1/template", nil))
	decode(t, response, &tpl)
	assert.Len(t, tpl.Sections, 6)
}

func TestCheckRoutes(t *testing.T) {
	a := newApp(t)

	executeRequest(a, httptest.NewRequest("PATCH", "/api/v1/draft/sections/cabin/items/horn",
		strings.NewReader(`{"severity":"issue","note":"silent"}`)))

	response := executeRequest(a, httptest.NewRequest("POST", "/api/v1/checks",
		strings.NewReader(`{"odometer":" 42000 ","generalNotes":"ok","vehicleLabel":"Van 1"}`)))
	checkResponseCode(t, http.StatusCreated, response.Code)
	var check models.Check
	decode(t, response, &check)
	assert.Equal(t, "check-1", check.ID)
	assert.Equal(t, "42000", check.Odometer)
	assert.Equal(t, 1, check.Summary.IssueCount)

	response = executeRequest(a, httptest.NewRequest("POST", "/api/v1/checks", nil))
	checkResponseCode(t, http.StatusCreated, response.Code)

	var checks []models.Check
	response = executeRequest(a, httptest.NewRequest("GET", "/api/v1/checks", nil))
	decode(t, response, &checks)
	require.Len(t, checks, 2)
	assert.Equal(t, "check-2", checks[0].ID)

	response = executeRequest(a, httptest.NewRequest("GET", "/api/v1/checks/check-1", nil))
	checkResponseCode(t, http.StatusOK, response.Code)

	response = executeRequest(a, httptest.NewRequest("GET", "/api/v1/checks/ghost", nil))
	checkResponseCode(t, http.StatusNotFound, response.Code)
	var errResp models.ErrorResponse
	decode(t, response, &errResp)
	assert.True(t, strings.HasPrefix(errResp.Response, "failed to get check by ID, "))

	response = executeRequest(a, httptest.NewRequest("GET", "/api/v1/checks/check-1/summary?download=1", nil))
	checkResponseCode(t, http.StatusOK, response.Code)
	assert.Equal(t, `attachment; filename="fleetcheck-check-2026-10-19.txt"`, response.Header().Get("Content-Disposition"))
	assert.Contains(t, response.Body.String(), "• Cabin: Horn — silent")
	assert.Contains(t, response.Body.String(), "Vehicle: Van 1")

	var email models.Email
	response = executeRequest(a, httptest.NewRequest("GET", "/api/v1/checks/check-1/email", nil))
	decode(t, response, &email)
	assert.Equal(t, "Vehicle check 2026-10-19 - Van 1", email.Subject)

	var view models.ReportView
	response = executeRequest(a, httptest.NewRequest("GET", "/api/v1/checks/check-1/report", nil))
	decode(t, response, &view)
	assert.Equal(t, 1, view.Totals.IssueCount)

	response = executeRequest(a, httptest.NewRequest("DELETE", "/api/v1/checks/check-1", nil))
	checkResponseCode(t, http.StatusNoContent, response.Code)
	response = executeRequest(a, httptest.NewRequest("DELETE", "/api/v1/checks/check-1", nil))
	checkResponseCode(t, http.StatusNoContent, response.Code)
	response = executeRequest(a, httptest.NewRequest("GET", "/api/v1/checks/check-1", nil))
	checkResponseCode(t, http.StatusNotFound, response.Code)
}

type recordingMailer struct {
	to  string
	err error
}

func (m *recordingMailer) Send(_ context.Context, to string, _ models.Email) error {
	m.to = to
	return m.err
}

func TestSendCheckHandler(t *testing.T) {
	a := newApp(t)
	check := a.Workspace.SaveCheck(context.Background(), "", "", "")

	req := httptest.NewRequest("POST", "/api/v1/checks/"+check.ID+"/send", strings.NewReader(`{"to":"a@example.com"}`))
	checkResponseCode(t, http.StatusServiceUnavailable, executeRequest(a, req).Code)

	m := &recordingMailer{}
	c := Check{WS: a.Workspace, Mailer: m}

	send := func(id, body string) int {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/checks/"+id+"/send", strings.NewReader(body))
		req = mux.SetURLVars(req, map[string]string{"check_id": id})
		c.SendCheckHandler(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusNoContent, send(check.ID, `{"to":"a@example.com"}`))
	assert.Equal(t, "a@example.com", m.to)
	assert.Equal(t, http.StatusBadRequest, send(check.ID, `{"to":""}`))
	assert.Equal(t, http.StatusNotFound, send("ghost", `{"to":"a@example.com"}`))

	m.err = errors.New("sendgrid down")
	assert.Equal(t, http.StatusBadGateway, send(check.ID, `{"to":"a@example.com"}`))
}

func TestTransferRoutes(t *testing.T) {
	a := newApp(t)
	executeRequest(a, httptest.NewRequest("POST", "/api/v1/vehicles", strings.NewReader(`{"plate":"A 1"}`)))
	executeRequest(a, httptest.NewRequest("POST", "/api/v1/checks", nil))

	full := executeRequest(a, httptest.NewRequest("GET", "/api/v1/export", nil))
	checkResponseCode(t, http.StatusOK, full.Code)
	assert.Equal(t, `attachment; filename="fleetcheck-export-2026-10-19.json"`, full.Header().Get("Content-Disposition"))

	single := executeRequest(a, httptest.NewRequest("GET", "/api/v1/checks/check-1/export", nil))
	checkResponseCode(t, http.StatusOK, single.Code)
	assert.Equal(t, `attachment; filename="fleetcheck-check-2026-10-19.json"`, single.Header().Get("Content-Disposition"))

	response := executeRequest(a, httptest.NewRequest("GET", "/api/v1/checks/ghost/export", nil))
	checkResponseCode(t, http.StatusNotFound, response.Code)

	b := newApp(t)
	response = executeRequest(b, httptest.NewRequest("POST", "/api/v1/import?replace_profile=true", strings.NewReader(full.Body.String())))
	checkResponseCode(t, http.StatusOK, response.Code)
	var result models.ImportResponse
	decode(t, response, &result)
	assert.Equal(t, models.ImportResponse{Kind: "full", Checks: 1}, result)
	assert.Len(t, b.Workspace.Profile().Vehicles, 1)

	response = executeRequest(b, httptest.NewRequest("POST", "/api/v1/import", strings.NewReader(single.Body.String())))
	decode(t, response, &result)
	assert.Equal(t, models.ImportResponse{Kind: "single", Checks: 1}, result)

	response = executeRequest(b, httptest.NewRequest("POST", "/api/v1/import", strings.NewReader(`{oops`)))
	checkResponseCode(t, http.StatusBadRequest, response.Code)
	var errResp models.ErrorResponse
	decode(t, response, &errResp)
	assert.True(t, strings.HasPrefix(errResp.Response, "failed to parse import, "))

	response = executeRequest(b, httptest.NewRequest("POST", "/api/v1/import", strings.NewReader(`{"hello":"world"}`)))
	checkResponseCode(t, http.StatusUnprocessableEntity, response.Code)
	decode(t, response, &errResp)
	assert.True(t, strings.HasPrefix(errResp.Response, "invalid import payload, "))
	assert.Len(t, b.Workspace.Checks(""), 1)
}
