package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/mbraun22/privatechef/pkg/util"
)

const keyPrefix = "session:"

// Data is the server-side session record referenced by the session_id
// cookie. Role is a snapshot from login time; authorization decisions
// re-read the user row instead of trusting it.
type Data struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Store persists session records in redis with a fixed TTL.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore builds a store. TTL at or below zero defaults to 30 days.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &Store{client: client, ttl: ttl}
}

// TTL returns the configured session lifetime.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Create writes the record under session:<id> with expiry. An existing
// id is overwritten.
func (s *Store) Create(ctx context.Context, sessionID string, data Data) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if err := s.client.Set(ctx, keyPrefix+sessionID, payload, s.ttl).Err(); err != nil {
		return apperrors.NewCacheError(err)
	}
	return nil
}

// Get reads the record for the id. ok is false when the session is
// absent or expired; redis eviction enforces the TTL.
func (s *Store) Get(ctx context.Context, sessionID string) (Data, bool, error) {
	payload, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return Data{}, false, nil
	}
	if err != nil {
		return Data{}, false, apperrors.NewCacheError(err)
	}

	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		return Data{}, false, apperrors.NewInternalError(err)
	}
	return data, true, nil
}

// Delete removes the session. Deleting an absent id is not an error.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return apperrors.NewCacheError(err)
	}
	return nil
}
