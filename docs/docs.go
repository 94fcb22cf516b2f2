// Package docs Fleetcheck API.
//
// Documentation of the Fleetcheck local API.
//
//     Schemes: http
//     BasePath: /
//     Version: 1.0.0
//     Host: 127.0.0.1:8417
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
// swagger:meta
package docs

import (
	"github.com/linesmerrill/fleetcheck/inspection"
	"github.com/linesmerrill/fleetcheck/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route GET /api/v1/profile profile profileID
// Gets the profile including its vehicles.
// responses:
//   200: profileResponse

// swagger:route PUT /api/v1/profile profile updateProfileID
// Replaces org, user, language and logo.
// responses:
//   200: profileResponse
//   400: errorResponse

// The profile shared by every check
// swagger:response profileResponse
type profileResponseWrapper struct {
	// in:body
	Body models.Profile
}

// swagger:route GET /api/v1/vehicles vehicles vehiclesID
// Lists the registered vehicles.
// responses:
//   200: vehiclesResponse

// swagger:response vehiclesResponse
type vehiclesResponseWrapper struct {
	// in:body
	Body []models.Vehicle
}

// swagger:route GET /api/v1/draft draft draftID
// Gets the live draft and its counters.
// responses:
//   200: draftResponse

// swagger:route PATCH /api/v1/draft/sections/{section_id}/items/{item_id} draft updateItemID
// Patches one item of the draft. Setting severity ok clears the note.
// responses:
//   200: draftResponse
//   400: errorResponse

// swagger:parameters updateItemID
type updateItemParams struct {
	// in:path
	SectionID string `json:"section_id"`
	// in:path
	ItemID string `json:"item_id"`
	// in:body
	Body inspection.ItemPatch
}

// The draft with totalItems, doneCount and issueCount
// swagger:response draftResponse
type draftResponseWrapper struct {
	// in:body
	Body models.DraftResponse
}

// swagger:route GET /api/v1/checks checks checksID
// Lists saved checks, newest first.
// responses:
//   200: checksResponse

// swagger:route POST /api/v1/checks checks createCheckID
// Saves the draft as a new check.
// responses:
//   201: checkResponse

// swagger:route GET /api/v1/checks/{check_id} checks checkByID
// Gets a single check by ID.
// responses:
//   200: checkResponse
//   404: errorResponse

// swagger:response checksResponse
type checksResponseWrapper struct {
	// in:body
	Body []models.Check
}

// Shows a single check by the given {ID}
// swagger:response checkResponse
type checkResponseWrapper struct {
	// in:body
	Body models.Check
}

// swagger:route POST /api/v1/import transfer importID
// Imports a full export or a single check export sent as the raw body.
// responses:
//   200: importResponse
//   400: errorResponse
//   422: errorResponse

// swagger:response importResponse
type importResponseWrapper struct {
	// in:body
	Body models.ImportResponse
}

// swagger:response errorResponse
type errorResponseWrapper struct {
	// in:body
	Body models.ErrorResponse
}
