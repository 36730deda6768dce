// Package errorspkg provides common app errors.
package errorspkg

import "errors"

var (
	// ErrInternal indicates internal server error.
	ErrInternal = errors.New("internal")
	// ErrFeatureDisabled indicates that the requested feature is switched off.
	ErrFeatureDisabled = errors.New("feature disabled")
	// ErrForbidden indicates that the caller lacks the required role.
	ErrForbidden = errors.New("forbidden")
	// ErrTooManyRequests indicates that the caller exceeded its rate limit.
	ErrTooManyRequests = errors.New("too many requests")
)
