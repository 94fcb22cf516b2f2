package transfer

import "fmt"

// ParseError is returned when an import is not valid JSON
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("import is not valid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvalidPayloadError is returned when an import is valid JSON but not a
// recognized envelope
type InvalidPayloadError struct {
	Reason string
	Err    error
}

func (e *InvalidPayloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid import payload: %s: %v", e.Reason, e.Err)
	}
	return "invalid import payload: " + e.Reason
}

func (e *InvalidPayloadError) Unwrap() error { return e.Err }
