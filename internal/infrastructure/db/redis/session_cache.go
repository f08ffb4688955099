package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fitengage/gym-manager/internal/core/domain"
)

const defaultSessionTTL = 15 * time.Minute

// SessionCache maps session tokens to the signed-in user.
// Key format: session:<sha256(token)>
type SessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// cachedUser is the cached projection; the password hash is never cached.
type cachedUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewSessionCache wraps client. A non-positive ttl falls back to 15 minutes.
func NewSessionCache(client *redis.Client, ttl time.Duration) *SessionCache {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionCache{client: client, ttl: ttl}
}

// Get returns nil, nil on a miss.
func (c *SessionCache) Get(ctx context.Context, token string) (*domain.User, error) {
	raw, err := c.client.Get(ctx, sessionKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session cache get: %w", err)
	}
	return decodeUser(raw)
}

func (c *SessionCache) Set(ctx context.Context, token string, user *domain.User) error {
	raw, err := encodeUser(user)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, sessionKey(token), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("session cache set: %w", err)
	}
	return nil
}

func (c *SessionCache) Delete(ctx context.Context, token string) error {
	if err := c.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("session cache delete: %w", err)
	}
	return nil
}

// Ping is used by the readiness probe.
func (c *SessionCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func sessionKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "session:" + hex.EncodeToString(sum[:])
}

func encodeUser(u *domain.User) ([]byte, error) {
	if u == nil {
		return nil, errors.New("session cache: nil user")
	}
	return json.Marshal(cachedUser{ID: u.ID, Name: u.Name, Email: u.Email})
}

func decodeUser(raw []byte) (*domain.User, error) {
	var cu cachedUser
	if err := json.Unmarshal(raw, &cu); err != nil {
		return nil, fmt.Errorf("session cache decode: %w", err)
	}
	return &domain.User{ID: cu.ID, Name: cu.Name, Email: cu.Email}, nil
}
