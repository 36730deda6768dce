// Package chatservice manages business logic layer of user messages.
package chatservice

import (
	"context"
	"sync"
	"time"

	"github.com/go-petr/super-app/internal/domain"
	"github.com/google/uuid"
)

// Auditor records user actions.
type Auditor interface {
	Record(ctx context.Context, action, user string) domain.AuditEvent
}

// Service facilitates chat service layer logic.
type Service struct {
	audit Auditor
	now   func() time.Time

	mu       sync.RWMutex
	messages []domain.Message
}

// New returns chat service struct to manage messages.
func New(a Auditor) *Service {
	return &Service{
		audit: a,
		now:   time.Now,
	}
}

// Send appends a message from sender to receiver.
func (s *Service) Send(ctx context.Context, sender, receiver, text string) (domain.Message, error) {
	if sender == "" || receiver == "" || text == "" {
		return domain.Message{}, domain.ErrInvalidMessage
	}

	msg := domain.Message{
		ID:       uuid.New(),
		Sender:   sender,
		Receiver: receiver,
		Text:     text,
		SentAt:   s.now().UTC(),
	}

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()

	s.audit.Record(ctx, domain.ActionSendMessage, sender)

	return msg, nil
}

// Inbox returns the messages received by username in send order.
func (s *Service) Inbox(_ context.Context, username string) []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]domain.Message, 0)

	for _, m := range s.messages {
		if m.Receiver == username {
			res = append(res, m)
		}
	}

	return res
}
