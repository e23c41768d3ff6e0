package redisx

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// IntentStore backs the two-step delete protocol: the operator first
// requests an intent token, then commits the delete with it. Tokens are
// single-use and expire after TTLDeleteIntent, which is what turns the
// original blocking confirm dialog into an API exchange.
type IntentStore struct {
	RDB *redis.Client
}

// Create issues a fresh token for deleting the entity {kind, id},
// replacing any previous one.
func (s *IntentStore) Create(ctx context.Context, kind, id string) (string, error) {
	token := uuid.NewString()
	key := fmt.Sprintf(KeyDeleteIntent, kind, id)
	if err := s.RDB.Set(ctx, key, token, TTLDeleteIntent).Err(); err != nil {
		return "", fmt.Errorf("store delete intent: %w", err)
	}
	return token, nil
}

// Consume checks the token and burns it. Returns false for a missing,
// expired, or mismatched token.
func (s *IntentStore) Consume(ctx context.Context, kind, id, token string) (bool, error) {
	key := fmt.Sprintf(KeyDeleteIntent, kind, id)
	stored, err := s.RDB.GetDel(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("consume delete intent: %w", err)
	}
	return token != "" && stored == token, nil
}
