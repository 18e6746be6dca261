package redis

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/soufianez0uhair/shopsmart-api/internal/core/domain"
	"github.com/soufianez0uhair/shopsmart-api/internal/core/ports"
)

// Roles are pre-seeded and immutable at runtime; entries never need eager
// invalidation. No TTL is set for the same reason.
const roleKeyPrefix = "role:"

// RoleCache is a read-through cache over a RoleRepository. Cache failures
// fall back to the underlying store so Redis being down never blocks a
// registration.
type RoleCache struct {
	client *redis.Client
	next   ports.RoleRepository
}

func NewRoleCache(client *redis.Client, next ports.RoleRepository) *RoleCache {
	return &RoleCache{client: client, next: next}
}

func (c *RoleCache) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	key := roleKeyPrefix + name

	if data, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var role domain.Role
		if json.Unmarshal(data, &role) == nil {
			return &role, nil
		}
	}

	role, err := c.next.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(role); err == nil {
		c.client.Set(ctx, key, data, 0)
	}
	return role, nil
}
