package models

// DraftMetaRequest holds the fields of the draft that are not per item. Nil
// fields are left alone.
type DraftMetaRequest struct {
	Date      *string `json:"date"`
	VehicleID *string `json:"vehicleId"`
}

// DoneRequest marks every draft item done or not done
type DoneRequest struct {
	Done bool `json:"done"`
}

// SaveCheckRequest holds the values entered when saving the draft
type SaveCheckRequest struct {
	Odometer     string `json:"odometer"`
	GeneralNotes string `json:"generalNotes"`
	VehicleLabel string `json:"vehicleLabel"`
}

// SendCheckRequest names the recipient of a shared check
type SendCheckRequest struct {
	To string `json:"to"`
}

// ImportResponse reports what an import did
type ImportResponse struct {
	Kind   string `json:"kind"`
	Checks int    `json:"checks"`
}
