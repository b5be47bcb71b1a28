package api

import "fmt"

// ErrUnavailable indicates a transport failure or a non-2xx response from
// the scoring API.
type ErrUnavailable struct {
	Status int
	Err    error
}

func (e *ErrUnavailable) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("scoring API returned HTTP %d", e.Status)
	}
	return fmt.Sprintf("scoring API unreachable: %v", e.Err)
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrInvalidPayload indicates the API responded 2xx but the body failed
// schema validation or question decoding.
type ErrInvalidPayload struct {
	Err error
}

func (e *ErrInvalidPayload) Error() string {
	return fmt.Sprintf("invalid scoring API payload: %v", e.Err)
}

func (e *ErrInvalidPayload) Unwrap() error { return e.Err }
