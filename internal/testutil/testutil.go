package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	redismodule "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/KasumiMercury/digico-snapshot-builder/internal/domain"
)

const redisImage = "redis:8-alpine"

// SetupRedisContainer skips the test when docker is not available.
func SetupRedisContainer(ctx context.Context, t *testing.T) (*redis.Client, func()) {
	t.Helper()

	defer func() {
		if r := recover(); r != nil {
			t.Skipf("failed to start redis container: %v", r)
		}
	}()

	container, err := redismodule.Run(ctx, redisImage)
	if err != nil {
		t.Skipf("failed to start redis container: %v", err)
	}

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Skipf("failed to get redis endpoint: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: endpoint,
	})

	cleanup := func() {
		if err := client.Close(); err != nil {
			t.Logf("failed to close redis client: %v", err)
		}

		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate redis container: %v", err)
		}
	}

	return client, cleanup
}

// NewPlan builds a plan with contiguous indices starting at existingCount.
func NewPlan(t *testing.T, sourceKey string, existingCount int, names ...string) *domain.SnapshotPlan {
	t.Helper()

	entries := make([]domain.SnapshotEntry, len(names))
	for i, name := range names {
		entries[i] = domain.SnapshotEntry{
			Position: i + 1,
			Name:     name,
			Index:    existingCount + i,
		}
	}
	return domain.NewSnapshotPlan(uuid.NewString(), sourceKey, existingCount, entries, time.Now().UTC().Truncate(time.Millisecond))
}
