package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount indicates an amount that is not a decimal number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates a negative credit amount.
	ErrNegativeAmount = errors.New("negative amount")
	// ErrNonPositiveAmount indicates a debit amount that is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be positive")
	// ErrInsufficientFunds indicates that the account balance is lower than the debit.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidTraffic indicates an internet package of less than one gigabyte.
	ErrInvalidTraffic = errors.New("traffic must be at least 1 GB")
)

// Bill is a transient request to debit an account. It is not stored.
type Bill struct {
	Username string          `json:"username"`
	Type     string          `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
}

// InternetPackage records a purchased amount of traffic.
type InternetPackage struct {
	Username    string          `json:"username"`
	GB          int             `json:"gb"`
	Cost        decimal.Decimal `json:"cost"`
	Balance     decimal.Decimal `json:"balance"`
	PurchasedAt time.Time       `json:"purchased_at"`
}
