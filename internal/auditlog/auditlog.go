// Package auditlog keeps an append-only record of user actions.
package auditlog

import (
	"context"
	"sync"
	"time"

	"github.com/go-petr/super-app/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Log is an in-memory append-only audit log. It is safe for concurrent use.
type Log struct {
	mu     sync.RWMutex
	events []domain.AuditEvent
	now    func() time.Time
}

// New returns an empty audit log.
func New() *Log {
	return &Log{now: time.Now}
}

// Record appends an event for the given action and user.
// An empty user is recorded as domain.SystemUser.
func (l *Log) Record(ctx context.Context, action, user string) domain.AuditEvent {
	if user == "" {
		user = domain.SystemUser
	}

	e := domain.AuditEvent{
		ID:     uuid.New(),
		Action: action,
		User:   user,
		Time:   l.now().UTC(),
	}

	l.mu.Lock()
	l.events = append(l.events, e)
	l.mu.Unlock()

	zerolog.Ctx(ctx).Info().
		Str("audit_id", e.ID.String()).
		Str("action", action).
		Str("user", user).
		Msg("audit")

	return e
}

// List returns a copy of all events in append order.
func (l *Log) List() []domain.AuditEvent {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.AuditEvent, len(l.events))
	copy(out, l.events)

	return out
}

// Len returns the number of recorded events.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.events)
}
