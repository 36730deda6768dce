package domain

import (
	"errors"
	"time"
)

var (
	// ErrInsuranceNotFound indicates that the user has not bought any plan.
	ErrInsuranceNotFound = errors.New("insurance not found")
	// ErrInvalidPlan indicates an empty insurance plan.
	ErrInvalidPlan = errors.New("invalid plan")
)

// Insurance holds the plan bought by a user.
type Insurance struct {
	Username    string    `json:"username"`
	Plan        string    `json:"plan"`
	PurchasedAt time.Time `json:"purchased_at"`
}
