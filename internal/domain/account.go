// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateAccount indicates that the account with the given username already exists.
	ErrDuplicateAccount = errors.New("account already exists")
	// ErrInvalidUsername indicates an empty username.
	ErrInvalidUsername = errors.New("invalid username")
	// ErrInvalidCredentials is returned for both unknown users and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidRole indicates an unsupported account role.
	ErrInvalidRole = errors.New("invalid role")
	// ErrPasswordTooLong indicates a password longer than MaxPasswordBytes.
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// Account roles.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Account holds user balance data. The credential never leaves the ledger.
type Account struct {
	Username  string          `json:"username"`
	Role      string          `json:"role"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

// Session is the result of a successful login.
type Session struct {
	AccessToken          string    `json:"access_token"`
	AccessTokenExpiresAt time.Time `json:"access_token_expires_at"`
	Account              Account   `json:"account"`
}
