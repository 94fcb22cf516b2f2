package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/fleetcheck/api"
	"github.com/linesmerrill/fleetcheck/config"
	"github.com/linesmerrill/fleetcheck/models"
	"github.com/linesmerrill/fleetcheck/workspace"
)

// Vehicle exported for testing purposes
type Vehicle struct {
	WS *workspace.Workspace
}

// VehicleHandler returns all vehicles of the profile
func (v Vehicle) VehicleHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, v.WS.Profile().Vehicles)
}

// CreateVehicleHandler registers a vehicle, its id is derived from the plate
func (v Vehicle) CreateVehicleHandler(w http.ResponseWriter, r *http.Request) {
	var body models.Vehicle
	if err := decodeBody(w, r, &body); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithStoreTimeout(r.Context())
	defer cancel()
	created, err := v.WS.AddVehicle(ctx, body)
	if err != nil {
		config.ErrorStatus("failed to create vehicle", http.StatusBadRequest, w, err)
		return
	}
	zap.S().Debugf("vehicle_id: %v", created.ID)
	writeJSON(w, http.StatusCreated, created)
}

// UpdateVehicleHandler updates a vehicle by ID
func (v Vehicle) UpdateVehicleHandler(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["vehicle_id"]

	var body models.Vehicle
	if err := decodeBody(w, r, &body); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithStoreTimeout(r.Context())
	defer cancel()
	updated, err := v.WS.UpdateVehicle(ctx, vehicleID, body)
	if errors.Is(err, workspace.ErrVehicleNotFound) {
		config.ErrorStatus("failed to get vehicle by ID", http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus("failed to update vehicle", http.StatusBadRequest, w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteVehicleHandler deletes a vehicle by ID. Unknown ids are not an error.
func (v Vehicle) DeleteVehicleHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithStoreTimeout(r.Context())
	defer cancel()
	v.WS.DeleteVehicle(ctx, mux.Vars(r)["vehicle_id"])
	w.WriteHeader(http.StatusNoContent)
}
