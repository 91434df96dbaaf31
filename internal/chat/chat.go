// Package chat stores mentor conversations keyed by session id.
package chat

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Role identifies who wrote a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ErrSessionNotFound is returned when deleting a session that does not exist.
var ErrSessionNotFound = errors.New("chat session not found")

// Message is one turn of a conversation.
type Message struct {
	Role      Role      `json:"role" validate:"required,oneof=user assistant"`
	Content   string    `json:"content" validate:"required,max=8000"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// Store persists conversation history.
type Store interface {
	// History returns up to limit of the most recent messages, oldest first.
	// An unknown session has an empty history. limit <= 0 returns everything.
	History(ctx context.Context, sessionID string, limit int) ([]Message, error)
	// Append adds messages to the session, creating it if necessary.
	Append(ctx context.Context, sessionID string, msgs ...Message) error
	// Delete removes the session and its history.
	Delete(ctx context.Context, sessionID string) error
}

// NewSessionID returns a fresh random session id.
func NewSessionID() string {
	return uuid.NewString()
}

// ValidSessionID reports whether id looks like a session id issued by NewSessionID.
func ValidSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Tail returns the last n messages of history, or all of them if n <= 0.
func Tail(history []Message, n int) []Message {
	if n <= 0 || len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
