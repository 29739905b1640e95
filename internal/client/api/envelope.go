package api

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/digibank/internal/client/models"
)

// Envelope is the uniform wrapper every API response is normalized into,
// regardless of HTTP status. The remote service may answer HTTP 200 with
// success:false for business-level failures, so callers must check Success
// rather than rely on the status code alone.
type Envelope struct {
	Success    bool             `json:"success"`
	Data       json.RawMessage  `json:"data,omitempty"`
	Message    string           `json:"message,omitempty"`
	Pagination *models.PageInfo `json:"pagination,omitempty"`
}

// Err converts a business-level failure into an error, or nil when the
// envelope reports success. The returned error is a *RequestError so callers
// can match it with errors.As.
func (e *Envelope) Err() error {
	if e.Success {
		return nil
	}
	msg := e.Message
	if msg == "" {
		msg = "request failed"
	}
	return &RequestError{Message: msg}
}

// decode unwraps the data payload of a successful envelope into T.
// A success:false envelope yields the zero value and the envelope's error.
func decode[T any](env *Envelope) (T, error) {
	var out T
	if err := env.Err(); err != nil {
		return out, err
	}
	if len(env.Data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, fmt.Errorf("decoding response data: %w", ErrUnavailable)
	}
	return out, nil
}
