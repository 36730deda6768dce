// Package tokenpkg issues and verifies access tokens.
package tokenpkg

import (
	"fmt"
	"time"
)

// Token kinds accepted by New.
const (
	KindPaseto = "paseto"
	KindJWT    = "jwt"
)

// Maker is an interface for managing tokens.
type Maker interface {
	// CreateToken creates a new token for a specific username, role and duration.
	CreateToken(username, role string, duration time.Duration) (string, *Payload, error)
	// VerifyToken checks if the token is valid or not.
	VerifyToken(token string) (*Payload, error)
}

// New returns the Maker of the given kind.
func New(kind, key string) (Maker, error) {
	switch kind {
	case KindPaseto, "":
		return NewPasetoMaker(key)
	case KindJWT:
		return NewJWTMaker(key)
	}

	return nil, fmt.Errorf("unsupported token type %q", kind)
}
