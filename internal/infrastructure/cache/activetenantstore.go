package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const activeTenantKeyPrefix = "tenancy:active-tenant:"

// ActiveTenantStore persists each user's last active-tenant choice so tenant
// switches survive new sessions. A missing key reads as zero.
type ActiveTenantStore struct {
	client *redis.Client
}

// NewActiveTenantStore creates a new ActiveTenantStore instance.
func NewActiveTenantStore(client *redis.Client) *ActiveTenantStore {
	return &ActiveTenantStore{client: client}
}

func activeTenantKey(userID uint) string {
	return activeTenantKeyPrefix + strconv.FormatUint(uint64(userID), 10)
}

// Get returns the user's stored tenant choice, or 0 if none was saved.
func (s *ActiveTenantStore) Get(ctx context.Context, userID uint) (uint, error) {
	val, err := s.client.Get(ctx, activeTenantKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get active tenant: %w", err)
	}

	tenantID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse active tenant: %w", err)
	}

	return uint(tenantID), nil
}

// Set persists the user's tenant choice. Choices have no TTL; they are
// overwritten on the next switch.
func (s *ActiveTenantStore) Set(ctx context.Context, userID uint, tenantID uint) error {
	val := strconv.FormatUint(uint64(tenantID), 10)
	if err := s.client.Set(ctx, activeTenantKey(userID), val, 0).Err(); err != nil {
		return fmt.Errorf("failed to save active tenant: %w", err)
	}
	return nil
}
