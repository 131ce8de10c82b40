package testdb

import (
	"context"
	"testing"

	"github.com/pageza/macro-service/backend/config"
	"github.com/pageza/macro-service/backend/internal/database"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestRedis wraps a Redis container started for a test
type TestRedis struct {
	Client    *redis.Client
	Config    *config.Config
	Container testcontainers.Container
}

// Close releases the client and terminates the container
func (tr *TestRedis) Close() error {
	if tr.Client != nil {
		_ = tr.Client.Close()
	}
	if tr.Container != nil {
		return tr.Container.Terminate(context.Background())
	}
	return nil
}

// SetupTestRedis starts a throwaway Redis server. The test is skipped in
// short mode or when no container runtime is available.
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping Redis container test in short mode")
	}

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForLog("Ready to accept connections"),
			wait.ForListeningPort("6379/tcp"),
		),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("container runtime unavailable: %v", err)
	}

	tr := &TestRedis{Container: container}
	t.Cleanup(func() { _ = tr.Close() })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	tr.Config = &config.Config{
		RedisHost: host,
		RedisPort: port.Port(),
	}

	tr.Client, err = database.NewRedisClient(ctx, tr.Config)
	require.NoError(t, err)

	return tr
}
