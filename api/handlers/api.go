package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/linesmerrill/fleetcheck/api"
	"github.com/linesmerrill/fleetcheck/config"
	"github.com/linesmerrill/fleetcheck/databases"
	"github.com/linesmerrill/fleetcheck/inspection"
	"github.com/linesmerrill/fleetcheck/mailer"
	"github.com/linesmerrill/fleetcheck/workspace"
)

// App stores the router and the workspace, so it can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Workspace *workspace.Workspace
	Mailer    mailer.Mailer
	store     *databases.Store
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()

	p := Profile{WS: a.Workspace}
	v := Vehicle{WS: a.Workspace}
	d := Draft{WS: a.Workspace}
	c := Check{WS: a.Workspace, Mailer: a.Mailer}
	t := Transfer{WS: a.Workspace}

	// healthchex
	r.HandleFunc("/health", api.HealthCheckHandler)
	r.Handle("/metrics", promhttp.Handler())

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Use(api.MetricsMiddleware, api.TimeoutMiddleware(a.Config.RequestTimeout))

	apiCreate.Handle("/profile", http.HandlerFunc(p.ProfileHandler)).Methods("GET")
	apiCreate.Handle("/profile", http.HandlerFunc(p.UpdateProfileHandler)).Methods("PUT")

	apiCreate.Handle("/vehicles", http.HandlerFunc(v.VehicleHandler)).Methods("GET")
	apiCreate.Handle("/vehicles", http.HandlerFunc(v.CreateVehicleHandler)).Methods("POST")
	apiCreate.Handle("/vehicles/{vehicle_id}", http.HandlerFunc(v.UpdateVehicleHandler)).Methods("PUT")
	apiCreate.Handle("/vehicles/{vehicle_id}", http.HandlerFunc(v.DeleteVehicleHandler)).Methods("DELETE")

	apiCreate.Handle("/template", http.HandlerFunc(d.TemplateHandler)).Methods("GET")

	apiCreate.Handle("/draft", http.HandlerFunc(d.DraftHandler)).Methods("GET")
	apiCreate.Handle("/draft", http.HandlerFunc(d.UpdateDraftHandler)).Methods("PATCH")
	apiCreate.Handle("/draft/reset", http.HandlerFunc(d.ResetDraftHandler)).Methods("POST")
	apiCreate.Handle("/draft/done", http.HandlerFunc(d.SetAllDoneHandler)).Methods("POST")
	apiCreate.Handle("/draft/report", http.HandlerFunc(d.DraftReportHandler)).Methods("GET")
	apiCreate.Handle("/draft/sections/{section_id}/items/{item_id}", http.HandlerFunc(d.UpdateItemHandler)).Methods("PATCH")

	apiCreate.Handle("/checks", http.HandlerFunc(c.CheckHandler)).Methods("GET")
	apiCreate.Handle("/checks", http.HandlerFunc(c.CreateCheckHandler)).Methods("POST")
	apiCreate.Handle("/checks/{check_id}", http.HandlerFunc(c.CheckByIDHandler)).Methods("GET")
	apiCreate.Handle("/checks/{check_id}", http.HandlerFunc(c.DeleteCheckHandler)).Methods("DELETE")
	apiCreate.Handle("/checks/{check_id}/summary", http.HandlerFunc(c.CheckSummaryHandler)).Methods("GET")
	apiCreate.Handle("/checks/{check_id}/email", http.HandlerFunc(c.CheckEmailHandler)).Methods("GET")
	apiCreate.Handle("/checks/{check_id}/report", http.HandlerFunc(c.CheckReportHandler)).Methods("GET")
	apiCreate.Handle("/checks/{check_id}/export", http.HandlerFunc(t.ExportCheckHandler)).Methods("GET")
	apiCreate.Handle("/checks/{check_id}/send", http.HandlerFunc(c.SendCheckHandler)).Methods("POST")

	apiCreate.Handle("/export", http.HandlerFunc(t.ExportHandler)).Methods("GET")
	apiCreate.Handle("/import", http.HandlerFunc(t.ImportHandler)).Methods("POST")

	return r
}

// Initialize is invoked by main to open the store and connect the routes
func (a *App) Initialize(ctx context.Context) error {
	backend, err := databases.NewBackend(ctx, &a.Config)
	if err != nil {
		zap.S().With(err).Error("failed to open store backend")
		return err
	}
	zap.S().Infow("fleetcheck has opened its store", "backend", a.Config.StoreBackend)

	a.store = databases.NewStore(backend)
	a.Workspace = workspace.New(ctx,
		databases.NewAppDatabase(a.store, inspection.AppID, inspection.AppVersion),
		databases.NewProfileDatabase(a.store),
	)
	a.Mailer = mailer.New(&a.Config)

	// initialize api router
	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

// Close releases the store
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

// maxBodyBytes bounds request bodies, export files included
const maxBodyBytes = 16 << 20

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

func attachment(w http.ResponseWriter, name string) {
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
}
