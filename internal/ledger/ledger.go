// Package ledger keeps accounts and their balances in process memory.
//
// The Store is the only owner of account balances. Every mutation of an
// account runs under that account's own mutex, so a debit compares and
// subtracts in one step while operations on other accounts proceed in
// parallel. Accounts are never removed.
package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/go-petr/super-app/internal/domain"
	"github.com/go-petr/super-app/internal/metrics"
	"github.com/go-petr/super-app/pkg/passpkg"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Ledger operation names used for metrics.
const (
	opCreate = "create"
	opCredit = "credit"
	opDebit  = "debit"
)

type record struct {
	mu sync.Mutex

	// Immutable after the record is published in Store.accounts.
	username   string
	credential string
	role       string
	createdAt  time.Time

	balance decimal.Decimal
}

func (r *record) snapshot() domain.Account {
	r.mu.Lock()
	defer r.mu.Unlock()

	return domain.Account{
		Username:  r.username,
		Role:      r.role,
		Balance:   r.balance,
		CreatedAt: r.createdAt,
	}
}

// Store owns all account records.
type Store struct {
	hasher passpkg.Hasher
	// decoy is checked against when the username is unknown so that both
	// failure paths of Authenticate do the same work.
	decoy string

	mu       sync.RWMutex
	accounts map[string]*record
}

// New returns an empty Store that stores credentials with the given hasher.
func New(hasher passpkg.Hasher) (*Store, error) {
	decoy, err := hasher.Hash("decoy-credential")
	if err != nil {
		return nil, err
	}

	s := &Store{
		hasher:   hasher,
		decoy:    decoy,
		accounts: make(map[string]*record),
	}

	return s, nil
}

func (s *Store) lookup(username string) (*record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.accounts[username]

	return r, ok
}

// Create creates an account with zero balance.
//
// A second registration of the same username fails with
// domain.ErrDuplicateAccount and leaves the existing account untouched.
func (s *Store) Create(ctx context.Context, username, credential, role string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	if username == "" {
		metrics.RecordLedgerOperation(opCreate, metrics.ResultInvalid)
		return domain.Account{}, domain.ErrInvalidUsername
	}

	stored, err := s.hasher.Hash(credential)
	if err != nil {
		l.Error().Err(err).Str("username", username).Msg("cannot hash credential")
		return domain.Account{}, err
	}

	r := &record{
		username:   username,
		credential: stored,
		role:       role,
		createdAt:  time.Now().UTC(),
		balance:    decimal.Zero,
	}

	s.mu.Lock()
	if _, ok := s.accounts[username]; ok {
		s.mu.Unlock()
		metrics.RecordLedgerOperation(opCreate, metrics.ResultDuplicate)

		return domain.Account{}, domain.ErrDuplicateAccount
	}
	s.accounts[username] = r
	s.mu.Unlock()

	metrics.RecordLedgerOperation(opCreate, metrics.ResultOK)
	l.Debug().Str("username", username).Msg("account created")

	return r.snapshot(), nil
}

// Authenticate reports whether the account exists and the credential matches.
//
// Unknown usernames and wrong credentials are indistinguishable to the caller.
func (s *Store) Authenticate(ctx context.Context, username, credential string) bool {
	r, ok := s.lookup(username)
	if !ok {
		_ = s.hasher.Check(credential, s.decoy)
		return false
	}

	if err := s.hasher.Check(credential, r.credential); err != nil {
		zerolog.Ctx(ctx).Debug().Str("username", username).Msg("credential mismatch")
		return false
	}

	return true
}

// Get returns a snapshot of the account.
func (s *Store) Get(_ context.Context, username string) (domain.Account, error) {
	r, ok := s.lookup(username)
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	return r.snapshot(), nil
}

// Balance returns the current balance of the account.
func (s *Store) Balance(_ context.Context, username string) (decimal.Decimal, error) {
	r, ok := s.lookup(username)
	if !ok {
		return decimal.Zero, domain.ErrAccountNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.balance, nil
}

// Credit adds a non-negative amount to the account and returns the new balance.
func (s *Store) Credit(ctx context.Context, username string, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		metrics.RecordLedgerOperation(opCredit, metrics.ResultInvalid)
		return decimal.Zero, domain.ErrNegativeAmount
	}

	r, ok := s.lookup(username)
	if !ok {
		metrics.RecordLedgerOperation(opCredit, metrics.ResultNotFound)
		return decimal.Zero, domain.ErrAccountNotFound
	}

	r.mu.Lock()
	r.balance = r.balance.Add(amount)
	balance := r.balance
	r.mu.Unlock()

	metrics.RecordLedgerOperation(opCredit, metrics.ResultOK)
	zerolog.Ctx(ctx).Debug().
		Str("username", username).
		Str("amount", amount.String()).
		Str("balance", balance.String()).
		Msg("account credited")

	return balance, nil
}

// Debit subtracts a positive amount from the account and returns the new balance.
//
// The debit is rejected with domain.ErrInsufficientFunds when the balance is
// lower than the amount; the balance is left unchanged in that case.
func (s *Store) Debit(ctx context.Context, username string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		metrics.RecordLedgerOperation(opDebit, metrics.ResultInvalid)
		return decimal.Zero, domain.ErrNonPositiveAmount
	}

	r, ok := s.lookup(username)
	if !ok {
		metrics.RecordLedgerOperation(opDebit, metrics.ResultNotFound)
		return decimal.Zero, domain.ErrAccountNotFound
	}

	r.mu.Lock()
	if r.balance.LessThan(amount) {
		balance := r.balance
		r.mu.Unlock()

		metrics.RecordLedgerOperation(opDebit, metrics.ResultInsufficient)
		zerolog.Ctx(ctx).Debug().
			Str("username", username).
			Str("amount", amount.String()).
			Str("balance", balance.String()).
			Msg("debit rejected")

		return decimal.Zero, domain.ErrInsufficientFunds
	}
	r.balance = r.balance.Sub(amount)
	balance := r.balance
	r.mu.Unlock()

	metrics.RecordLedgerOperation(opDebit, metrics.ResultOK)
	zerolog.Ctx(ctx).Debug().
		Str("username", username).
		Str("amount", amount.String()).
		Str("balance", balance.String()).
		Msg("account debited")

	return balance, nil
}

// Count returns the number of accounts.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.accounts)
}
