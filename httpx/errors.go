package httpx

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

// StatusError indicates a non-2xx HTTP response that carried no
// decodable API error body.
type StatusError struct {
	// StatusCode is the HTTP status code.
	StatusCode int
}

// Error returns a string representation of the status error.
func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}

// StatusOf reports the HTTP status carried by a transport error and
// whether the error carries one at all.
func StatusOf(err error) (int, bool) {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode, true
	}
	return 0, false
}
