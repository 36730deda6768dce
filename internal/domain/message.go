package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidMessage indicates a message without sender, receiver or text.
var ErrInvalidMessage = errors.New("invalid message")

// Message is a chat message between two users.
type Message struct {
	ID       uuid.UUID `json:"id"`
	Sender   string    `json:"sender"`
	Receiver string    `json:"receiver"`
	Text     string    `json:"text"`
	SentAt   time.Time `json:"sent_at"`
}
