package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jonathan/career-advisor/internal/chat"
	"github.com/sirupsen/logrus"
)

// ChatStore implements chat.Store on PostgreSQL
type ChatStore struct {
	db          *DB
	maxMessages int
	idleTTL     time.Duration
	now         func() time.Time
}

// NewChatStore returns a store that keeps at most maxMessages per session
// (0 keeps everything). Sessions idle for longer than idleTTL read as empty
// until DeleteIdleSessions removes them; 0 disables expiry.
func NewChatStore(db *DB, maxMessages int, idleTTL time.Duration) *ChatStore {
	return &ChatStore{db: db, maxMessages: maxMessages, idleTTL: idleTTL, now: time.Now}
}

// activeSince is the oldest last_active_at a live session may have.
func (s *ChatStore) activeSince() time.Time {
	if s.idleTTL <= 0 {
		return time.Time{}
	}
	return s.now().Add(-s.idleTTL)
}

var _ chat.Store = (*ChatStore)(nil)

// History returns up to limit of the latest messages in the session, oldest first
func (s *ChatStore) History(ctx context.Context, sessionID string, limit int) ([]chat.Message, error) {
	var (
		rows pgx.Rows
		err  error
	)
	since := s.activeSince()
	if limit > 0 {
		rows, err = s.db.pool.Query(ctx,
			`SELECT role, content, created_at FROM (
			     SELECT m.id, m.role, m.content, m.created_at FROM chat_messages m
			     JOIN chat_sessions cs ON cs.id = m.session_id
			     WHERE m.session_id = $1 AND cs.last_active_at >= $2
			     ORDER BY m.id DESC LIMIT $3
			 ) latest ORDER BY id ASC`,
			sessionID, since, limit,
		)
	} else {
		rows, err = s.db.pool.Query(ctx,
			`SELECT m.role, m.content, m.created_at FROM chat_messages m
			 JOIN chat_sessions cs ON cs.id = m.session_id
			 WHERE m.session_id = $1 AND cs.last_active_at >= $2
			 ORDER BY m.id ASC`,
			sessionID, since,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query chat history: %w", err)
	}
	defer rows.Close()

	history := []chat.Message{}
	for rows.Next() {
		var (
			m    chat.Message
			role string
		)
		if err := rows.Scan(&role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		m.Role = chat.Role(role)
		history = append(history, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read chat history: %w", err)
	}
	return history, nil
}

// Append stores messages in a single transaction and trims the session to maxMessages
func (s *ChatStore) Append(ctx context.Context, sessionID string, msgs ...chat.Message) error {
	tx, err := s.db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO chat_sessions (id) VALUES ($1)
		 ON CONFLICT (id) DO UPDATE SET last_active_at = NOW()`,
		sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert chat session: %w", err)
	}

	now := time.Now().UTC()
	for _, m := range msgs {
		createdAt := m.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO chat_messages (session_id, role, content, created_at)
			 VALUES ($1, $2, $3, $4)`,
			sessionID, string(m.Role), m.Content, createdAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert chat message: %w", err)
		}
	}

	if s.maxMessages > 0 {
		_, err = tx.Exec(ctx,
			`DELETE FROM chat_messages WHERE session_id = $1 AND id NOT IN (
			     SELECT id FROM chat_messages WHERE session_id = $1 ORDER BY id DESC LIMIT $2
			 )`,
			sessionID, s.maxMessages,
		)
		if err != nil {
			return fmt.Errorf("failed to trim chat history: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit chat messages: %w", err)
	}
	return nil
}

// Delete removes a session and, by cascade, its messages
func (s *ChatStore) Delete(ctx context.Context, sessionID string) error {
	tag, err := s.db.pool.Exec(ctx, `DELETE FROM chat_sessions WHERE id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete chat session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return chat.ErrSessionNotFound
	}
	return nil
}

// DeleteIdleSessions removes sessions inactive for longer than ttl
func (s *ChatStore) DeleteIdleSessions(ctx context.Context, ttl time.Duration) (int64, error) {
	tag, err := s.db.pool.Exec(ctx,
		`DELETE FROM chat_sessions WHERE last_active_at < $1`,
		s.now().Add(-ttl),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete idle sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

// RunIdleSweeper deletes sessions idle for longer than ttl every interval
// until ctx is done.
func (s *ChatStore) RunIdleSweeper(ctx context.Context, ttl, interval time.Duration, log logrus.FieldLogger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.DeleteIdleSessions(ctx, ttl)
			if err != nil {
				if ctx.Err() == nil {
					log.WithError(err).Warn("failed to delete idle chat sessions")
				}
				continue
			}
			if n > 0 {
				log.WithField("count", n).Info("deleted idle chat sessions")
			}
		}
	}
}
