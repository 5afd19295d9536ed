package security

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DenyList records token ids revoked by logout. Entries live in redis with a
// TTL equal to the token's remaining lifetime, so cleanup is automatic and the
// list never outgrows the set of not-yet-expired revoked tokens.
type DenyList struct {
	client *redis.Client
}

func NewDenyList(client *redis.Client) *DenyList {
	return &DenyList{client: client}
}

func denyKey(jti string) string {
	return fmt.Sprintf("deny:jti:%s", jti)
}

func (d *DenyList) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, denyKey(jti), "1", ttl).Err()
}

func (d *DenyList) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := d.client.Exists(ctx, denyKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
