// Package walletservice manages business logic layer of wallets.
package walletservice

import (
	"context"
	"sync"
	"time"

	"github.com/go-petr/super-app/internal/domain"
	"github.com/go-petr/super-app/pkg/errorspkg"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Ledger provides balance operations needed by wallet service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package walletservice
type Ledger interface {
	Credit(ctx context.Context, username string, amount decimal.Decimal) (decimal.Decimal, error)
	Debit(ctx context.Context, username string, amount decimal.Decimal) (decimal.Decimal, error)
	Balance(ctx context.Context, username string) (decimal.Decimal, error)
}

// Auditor records user actions.
type Auditor interface {
	Record(ctx context.Context, action, user string) domain.AuditEvent
}

// Service facilitates wallet service layer logic.
type Service struct {
	ledger  Ledger
	audit   Auditor
	gbPrice decimal.Decimal
	now     func() time.Time

	mu       sync.Mutex
	packages []domain.InternetPackage
}

// New returns wallet service struct to manage wallet business logic.
// Internet traffic is charged gbPrice per gigabyte.
func New(l Ledger, a Auditor, gbPrice decimal.Decimal) *Service {
	return &Service{
		ledger:  l,
		audit:   a,
		gbPrice: gbPrice,
		now:     time.Now,
	}
}

func ledgerError(err error) error {
	switch err {
	case domain.ErrAccountNotFound,
		domain.ErrInsufficientFunds,
		domain.ErrNegativeAmount,
		domain.ErrNonPositiveAmount:
		return err
	}

	return errorspkg.ErrInternal
}

// TopUp credits the wallet of the given user and returns the new balance.
func (s *Service) TopUp(ctx context.Context, username string, amount decimal.Decimal) (decimal.Decimal, error) {
	balance, err := s.ledger.Credit(ctx, username, amount)
	if err != nil {
		return decimal.Zero, ledgerError(err)
	}

	s.audit.Record(ctx, domain.ActionAddMoney, username)

	return balance, nil
}

// PayBill debits the bill amount from the wallet and returns the new balance.
func (s *Service) PayBill(ctx context.Context, bill domain.Bill) (decimal.Decimal, error) {
	balance, err := s.ledger.Debit(ctx, bill.Username, bill.Amount)
	if err != nil {
		return decimal.Zero, ledgerError(err)
	}

	zerolog.Ctx(ctx).Info().
		Str("username", bill.Username).
		Str("type", bill.Type).
		Str("amount", bill.Amount.String()).
		Msg("bill paid")

	s.audit.Record(ctx, domain.ActionPayBill, bill.Username)

	return balance, nil
}

// Balance returns the wallet balance of the given user.
func (s *Service) Balance(ctx context.Context, username string) (decimal.Decimal, error) {
	balance, err := s.ledger.Balance(ctx, username)
	if err != nil {
		return decimal.Zero, ledgerError(err)
	}

	return balance, nil
}

// BuyInternet charges the user for gb gigabytes of traffic and records the package.
func (s *Service) BuyInternet(ctx context.Context, username string, gb int) (domain.InternetPackage, error) {
	if gb < 1 {
		return domain.InternetPackage{}, domain.ErrInvalidTraffic
	}

	cost := s.gbPrice.Mul(decimal.NewFromInt(int64(gb)))

	balance, err := s.ledger.Debit(ctx, username, cost)
	if err != nil {
		return domain.InternetPackage{}, ledgerError(err)
	}

	p := domain.InternetPackage{
		Username:    username,
		GB:          gb,
		Cost:        cost,
		Balance:     balance,
		PurchasedAt: s.now().UTC(),
	}

	s.mu.Lock()
	s.packages = append(s.packages, p)
	s.mu.Unlock()

	s.audit.Record(ctx, domain.ActionBuyInternet, username)

	return p, nil
}

// Packages returns internet packages bought by the given user in purchase order.
func (s *Service) Packages(_ context.Context, username string) []domain.InternetPackage {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]domain.InternetPackage, 0)

	for _, p := range s.packages {
		if p.Username == username {
			res = append(res, p)
		}
	}

	return res
}
