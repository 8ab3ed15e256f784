package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mobile-wallet-core/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// ChallengeStore implements ports.ChallengeStore on Redis. Challenge
// state is one-shot: Take removes the entry atomically with GETDEL so
// an assertion can never be verified against the same challenge twice.
type ChallengeStore struct {
	client *goredis.Client
	prefix string
}

// NewChallengeStore creates a Redis-backed WebAuthn challenge store.
func NewChallengeStore(client *goredis.Client) *ChallengeStore {
	return &ChallengeStore{
		client: client,
		prefix: "webauthn:auth:challenge:",
	}
}

// Put stores challenge state under the given id with a TTL.
func (s *ChallengeStore) Put(ctx context.Context, challengeID string, state *domain.ChallengeState, ttl time.Duration) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal challenge state: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+challengeID, data, ttl).Err(); err != nil {
		return fmt.Errorf("store challenge state: %w", err)
	}
	return nil
}

// Take retrieves and deletes challenge state in one step. Returns
// (nil, nil) when the challenge is unknown or already consumed.
func (s *ChallengeStore) Take(ctx context.Context, challengeID string) (*domain.ChallengeState, error) {
	data, err := s.client.GetDel(ctx, s.prefix+challengeID).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("take challenge state: %w", err)
	}

	state := &domain.ChallengeState{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("unmarshal challenge state: %w", err)
	}
	return state, nil
}
