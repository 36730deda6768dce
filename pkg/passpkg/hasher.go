// Package passpkg hides credential storage and comparison behind a single interface.
package passpkg

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher kinds accepted by New.
const (
	KindBcrypt = "bcrypt"
	KindPlain  = "plain"
)

// ErrMismatchedCredential is returned by Plain.Check on a mismatch.
var ErrMismatchedCredential = errors.New("credential does not match")

// Hasher turns a credential into its stored form and compares against it.
type Hasher interface {
	Hash(credential string) (string, error)
	Check(credential, stored string) error
}

// New returns the hasher of the given kind.
func New(kind string, cost int) (Hasher, error) {
	switch kind {
	case KindBcrypt, "":
		return Bcrypt{Cost: cost}, nil
	case KindPlain:
		return Plain{}, nil
	}

	return nil, fmt.Errorf("unsupported password hasher %q", kind)
}

// Bcrypt stores salted bcrypt hashes.
type Bcrypt struct {
	Cost int // bcrypt.DefaultCost is used when below bcrypt.MinCost
}

// Hash returns the bcrypt hash of the credential.
func (b Bcrypt) Hash(credential string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(credential), b.Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// Check compares the credential with the stored bcrypt hash.
func (b Bcrypt) Check(credential, stored string) error {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(credential))
}

// Plain stores credentials as is and compares them byte for byte.
type Plain struct{}

// Hash returns the credential unchanged.
func (Plain) Hash(credential string) (string, error) {
	return credential, nil
}

// Check reports ErrMismatchedCredential unless both strings are equal.
func (Plain) Check(credential, stored string) error {
	if subtle.ConstantTimeCompare([]byte(credential), []byte(stored)) != 1 {
		return ErrMismatchedCredential
	}

	return nil
}
