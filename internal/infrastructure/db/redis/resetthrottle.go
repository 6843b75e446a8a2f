package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCooldown = 10 * time.Minute

// ResetThrottle caps password-reset mails to one per address per cooldown
// window, backed by Redis.
// Key format: pwreset:<email>
type ResetThrottle struct {
	client   *redis.Client
	cooldown time.Duration
}

// NewResetThrottle creates a ResetThrottle wrapping the given Redis client.
func NewResetThrottle(client *redis.Client, cooldown time.Duration) *ResetThrottle {
	if cooldown <= 0 {
		cooldown = defaultCooldown
	}
	return &ResetThrottle{client: client, cooldown: cooldown}
}

// Reserve claims the send slot for email. Returns false when a reset was
// already requested within the cooldown window.
func (t *ResetThrottle) Reserve(ctx context.Context, email string) (bool, error) {
	ok, err := t.client.SetNX(ctx, t.key(email), "1", t.cooldown).Result()
	if err != nil {
		return false, fmt.Errorf("reset throttle: %w", err)
	}
	return ok, nil
}

// Release frees the slot so a failed delivery can be retried immediately.
func (t *ResetThrottle) Release(ctx context.Context, email string) error {
	return t.client.Del(ctx, t.key(email)).Err()
}

func (t *ResetThrottle) key(email string) string {
	return fmt.Sprintf("pwreset:%s", email)
}
