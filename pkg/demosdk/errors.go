package demosdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/okitolabs/demopass/pkg/httpx"
)

// Error codes returned by the demopass API.
const (
	ErrorCodeInvalidRequest = "invalid_request"
	ErrorCodeInvalidLength  = "invalid_length"
	ErrorCodeServerError    = "server_error"
)

// APIError is the error document every endpoint returns on failure. It
// implements the error interface and is used both by the server (to write
// HTTP responses) and by the SDK client (to represent decoded errors).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g., "invalid_length")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

var (
	// ErrInvalidRequest is returned when the request body is malformed or a
	// parameter is out of range.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrInvalidLength is returned when the requested credential length
	// cannot hold one character from each of the four classes.
	ErrInvalidLength = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidLength,
		Description: "credential length must be at least 4",
	}

	// ErrServerError is returned for unexpected internal failures.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// parseErrorResponse decodes an error body into an *APIError. Bodies that are
// not the standard error document are wrapped in a generic APIError carrying
// the HTTP status.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Code != "" {
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("unexpected status %d", resp.StatusCode),
	}
}
