// Package insuranceservice manages business logic layer of insurance plans.
package insuranceservice

import (
	"context"
	"sync"
	"time"

	"github.com/go-petr/super-app/internal/domain"
)

// Auditor records user actions.
type Auditor interface {
	Record(ctx context.Context, action, user string) domain.AuditEvent
}

// Service facilitates insurance service layer logic.
type Service struct {
	audit Auditor
	now   func() time.Time

	mu    sync.RWMutex
	plans map[string]domain.Insurance
}

// New returns insurance service struct to manage insurance business logic.
func New(a Auditor) *Service {
	return &Service{
		audit: a,
		now:   time.Now,
		plans: make(map[string]domain.Insurance),
	}
}

// Buy stores the plan for the user. A later purchase replaces the earlier one.
func (s *Service) Buy(ctx context.Context, username, plan string) (domain.Insurance, error) {
	if username == "" {
		return domain.Insurance{}, domain.ErrInvalidUsername
	}

	if plan == "" {
		return domain.Insurance{}, domain.ErrInvalidPlan
	}

	ins := domain.Insurance{
		Username:    username,
		Plan:        plan,
		PurchasedAt: s.now().UTC(),
	}

	s.mu.Lock()
	s.plans[username] = ins
	s.mu.Unlock()

	s.audit.Record(ctx, domain.ActionBuyInsurance, username)

	return ins, nil
}

// Get returns the current plan of the user.
func (s *Service) Get(_ context.Context, username string) (domain.Insurance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ins, ok := s.plans[username]
	if !ok {
		return domain.Insurance{}, domain.ErrInsuranceNotFound
	}

	return ins, nil
}
