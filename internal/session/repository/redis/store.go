package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"card-consumption-assistant/internal/model"
	"card-consumption-assistant/internal/session"
	"card-consumption-assistant/pkg/log"
)

const keyPrefix = "message_store:"

type implStore struct {
	client *goredis.Client
	ttl    time.Duration
	l      log.Logger
}

// New creates a redis-backed history store. Each session is a list under
// "message_store:<session id>" with the newest turn at the head. A positive
// ttl refreshes the key expiry on every append.
func New(client *goredis.Client, ttl time.Duration, l log.Logger) session.Store {
	if client == nil {
		panic("session/repository/redis: client is required")
	}
	return &implStore{client: client, ttl: ttl, l: l}
}

func key(sessionID string) string {
	return keyPrefix + sessionID
}

func (s *implStore) Append(ctx context.Context, sessionID string, turns ...model.Turn) error {
	if sessionID == "" {
		return session.ErrEmptySessionID
	}
	if len(turns) == 0 {
		return nil
	}

	encoded := make([]interface{}, len(turns))
	for i, t := range turns {
		raw, err := session.Encode(t)
		if err != nil {
			return err
		}
		encoded[i] = string(raw)
	}

	k := key(sessionID)
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.LPush(ctx, k, encoded...)
		if s.ttl > 0 {
			pipe.Expire(ctx, k, s.ttl)
		}
		return nil
	})
	if err != nil {
		s.l.Errorf(ctx, "session/repository/redis.Append: %v", err)
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

func (s *implStore) Read(ctx context.Context, sessionID string) ([]model.Turn, error) {
	if sessionID == "" {
		return nil, session.ErrEmptySessionID
	}

	items, err := s.client.LRange(ctx, key(sessionID), 0, -1).Result()
	if err != nil {
		s.l.Errorf(ctx, "session/repository/redis.Read: %v", err)
		return nil, fmt.Errorf("read history: %w", err)
	}

	turns, skipped := oldestFirst(items)
	for _, err := range skipped {
		s.l.Warnf(ctx, "session/repository/redis.Read: skipping entry: %v", err)
	}
	return turns, nil
}

// oldestFirst decodes a list read with LRANGE 0 -1. LPUSH leaves the newest
// turn at the head, so entries are walked backwards. Undecodable entries are
// skipped and reported.
func oldestFirst(items []string) ([]model.Turn, []error) {
	turns := make([]model.Turn, 0, len(items))
	var skipped []error
	for i := len(items) - 1; i >= 0; i-- {
		t, err := session.Decode([]byte(items[i]))
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		turns = append(turns, t)
	}
	return turns, skipped
}
