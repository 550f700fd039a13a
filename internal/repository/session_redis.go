package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"studyaid-backend/internal/session"
)

const sessionKeyPrefix = "session:"

// RedisStore keeps JSON session snapshots in Redis with a sliding TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(id uuid.UUID) string {
	return sessionKeyPrefix + id.String()
}

func (r *RedisStore) Save(ctx context.Context, s *session.State) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(s.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, id uuid.UUID) (*session.State, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	s := &session.State{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	if s.Selections == nil {
		s.Selections = make(map[int]string)
	}
	// Reads extend the session the same way writes do.
	if err := r.client.Expire(ctx, sessionKey(id), r.ttl).Err(); err != nil {
		return nil, fmt.Errorf("refresh session ttl: %w", err)
	}
	return s, nil
}

func (r *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.Del(ctx, sessionKey(id)).Err()
}
