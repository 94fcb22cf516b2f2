package models

// ErrorResponse is the body written for every failed API request
type ErrorResponse struct {
	Response string `json:"response"`
}
