package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrUpstream          = errors.New("upstream service failed")
	ErrMalformedResponse = errors.New("malformed upstream response")
	ErrWrite             = errors.New("write failed")
)

// UpstreamServiceError is returned when the search API answers with a non-2xx status.
type UpstreamServiceError struct {
	Service    string
	StatusCode int
}

func (e *UpstreamServiceError) Error() string {
	return fmt.Sprintf("%s API error: %d", e.Service, e.StatusCode)
}

func (e *UpstreamServiceError) Unwrap() error {
	return ErrUpstream
}
