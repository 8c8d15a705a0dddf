package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	revokedKeyPrefix = "fitx-revoked-token||"
	// how long a revoked non-expiring token stays on the list
	DefaultRevocationTTL = 30 * 24 * time.Hour
)

var ErrTokenRevoked = errors.New("token revoked")

// RevocationList keeps logged out token ids in redis until they would have expired anyway.
type RevocationList struct {
	redisClient *redis.Client
	now         func() time.Time
}

func NewRevocationList(redisClient *redis.Client) *RevocationList {
	return &RevocationList{
		redisClient: redisClient,
		now:         time.Now,
	}
}

func (l *RevocationList) Revoke(ctx context.Context, claims *Claims) error {
	if claims == nil || claims.ID == "" {
		return ErrInvalidToken
	}

	ttl := DefaultRevocationTTL
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Sub(l.now())
		if ttl <= 0 {
			// already expired, nothing to revoke
			return nil
		}
	}

	return l.redisClient.Set(ctx, revokedKeyPrefix+claims.ID, claims.UserID, ttl).Err()
}

func (l *RevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := l.redisClient.Get(ctx, revokedKeyPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
