package chat

import (
	"context"
	"slices"
	"sync"
	"time"
)

// MemoryOptions configures a MemoryStore.
type MemoryOptions struct {
	TTL           time.Duration // Idle time after which a session expires
	MaxMessages   int           // Per-session cap; oldest messages are dropped
	SweepInterval time.Duration // Background sweep period, 0 disables it
}

// DefaultMemoryOptions returns the options used by the server.
func DefaultMemoryOptions() MemoryOptions {
	return MemoryOptions{
		TTL:           2 * time.Hour,
		MaxMessages:   50,
		SweepInterval: 10 * time.Minute,
	}
}

type session struct {
	messages   []Message
	lastAccess time.Time
}

// MemoryStore is an in-process Store. Sessions expire after TTL of inactivity.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	opts     MemoryOptions
	now      func() time.Time

	sweepTicker *time.Ticker
	sweepStop   chan struct{}
	stopOnce    sync.Once
}

// NewMemoryStore creates a MemoryStore and starts the sweep goroutine if
// opts.SweepInterval is positive. Call Close to stop it.
func NewMemoryStore(opts MemoryOptions) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]*session),
		opts:     opts,
		now:      time.Now,
	}

	if opts.SweepInterval > 0 && opts.TTL > 0 {
		s.sweepTicker = time.NewTicker(opts.SweepInterval)
		s.sweepStop = make(chan struct{})
		go s.sweepLoop()
	}
	return s
}

// History implements Store
func (s *MemoryStore) History(ctx context.Context, sessionID string, limit int) ([]Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.live(sessionID)
	if !ok {
		return []Message{}, nil
	}
	sess.lastAccess = s.now()
	return slices.Clone(Tail(sess.messages, limit)), nil
}

// Append implements Store
func (s *MemoryStore) Append(ctx context.Context, sessionID string, msgs ...Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess, ok := s.live(sessionID)
	if !ok {
		sess = &session{}
		s.sessions[sessionID] = sess
	}
	for _, m := range msgs {
		if m.CreatedAt.IsZero() {
			m.CreatedAt = now
		}
		sess.messages = append(sess.messages, m)
	}
	if s.opts.MaxMessages > 0 && len(sess.messages) > s.opts.MaxMessages {
		sess.messages = slices.Clone(Tail(sess.messages, s.opts.MaxMessages))
	}
	sess.lastAccess = now
	return nil
}

// Delete implements Store
func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.live(sessionID); !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

// Len returns the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes sessions idle since before now-TTL and returns how many were removed.
func (s *MemoryStore) Sweep(now time.Time) int {
	if s.opts.TTL <= 0 {
		return 0
	}
	cutoff := now.Add(-s.opts.TTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.lastAccess.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Close stops the sweep goroutine.
func (s *MemoryStore) Close() {
	s.stopOnce.Do(func() {
		if s.sweepTicker != nil {
			s.sweepTicker.Stop()
		}
		if s.sweepStop != nil {
			close(s.sweepStop)
		}
	})
}

// live returns the session if it exists and has not expired. Expired sessions
// are dropped. Callers hold s.mu.
func (s *MemoryStore) live(sessionID string) (*session, bool) {
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, false
	}
	if s.opts.TTL > 0 && s.now().Sub(sess.lastAccess) > s.opts.TTL {
		delete(s.sessions, sessionID)
		return nil, false
	}
	return sess, true
}

func (s *MemoryStore) sweepLoop() {
	for {
		select {
		case <-s.sweepTicker.C:
			s.Sweep(s.now())
		case <-s.sweepStop:
			return
		}
	}
}

var _ Store = (*MemoryStore)(nil)
