// Package randompkg provides functionality for generating random application items.
package randompkg

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer in [0, max) using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// IntBetween generates a random integer in [min, max].
func IntBetween(min, max int) int {
	return min + int(Intn(max-min+1))
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// Username generates a random username.
func Username() string {
	return String(8)
}

// Password generates a random password that passes request validation.
func Password() string {
	return String(10)
}

// Role generates a random account role.
func Role() string {
	roles := []string{"USER", "ADMIN"}
	return roles[Intn(len(roles))]
}

// MoneyAmountBetween generates a random whole amount of money in [min, max].
func MoneyAmountBetween(min, max int) decimal.Decimal {
	return decimal.NewFromInt(int64(IntBetween(min, max)))
}
