package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"card-consumption-assistant/internal/model"
	"card-consumption-assistant/internal/session"
)

const (
	defaultMaxSessions = 10000
	defaultTTL         = 24 * time.Hour
)

type implStore struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, []model.Turn]
}

// New creates an in-process history store. Idle sessions expire after ttl
// and the least recently used ones are evicted beyond maxSessions.
func New(maxSessions int, ttl time.Duration) session.Store {
	if maxSessions <= 0 {
		maxSessions = defaultMaxSessions
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &implStore{
		sessions: expirable.NewLRU[string, []model.Turn](maxSessions, nil, ttl),
	}
}

func (s *implStore) Append(ctx context.Context, sessionID string, turns ...model.Turn) error {
	if sessionID == "" {
		return session.ErrEmptySessionID
	}
	if len(turns) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history, _ := s.sessions.Get(sessionID)
	next := make([]model.Turn, 0, len(history)+len(turns))
	next = append(next, history...)
	next = append(next, turns...)
	s.sessions.Add(sessionID, next)
	return nil
}

func (s *implStore) Read(ctx context.Context, sessionID string) ([]model.Turn, error) {
	if sessionID == "" {
		return nil, session.ErrEmptySessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, nil
	}
	out := make([]model.Turn, len(history))
	copy(out, history)
	return out, nil
}
