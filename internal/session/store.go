// Package session stores the authenticated user in Redis, one record per
// session id. Deleting the record invalidates any JWT carrying that id.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"evento/internal/models"
)

var ErrNotFound = errors.New("session not found")

const keyPrefix = "session:"

type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func (s *Store) Save(ctx context.Context, sessionID string, user *models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+sessionID, payload, s.ttl).Err()
}

// A corrupt record reads as unauthenticated.
func (s *Store) Get(ctx context.Context, sessionID string) (*models.User, error) {
	payload, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, keyPrefix+sessionID).Err()
}
