package database

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClients_BadURL(t *testing.T) {
	clients, err := NewRedisClients("not-a-redis-url")
	assert.Nil(t, clients)
	assert.ErrorContains(t, err, "failed to parse Redis URL")
}

// TestNewRedisClients_SeparateConnections needs a reachable server, e.g.
// REDIS_TEST_URL=redis://localhost:6379/15.
func TestNewRedisClients_SeparateConnections(t *testing.T) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}
	clients, err := NewRedisClients(url)
	require.NoError(t, err)
	t.Cleanup(clients.Close)

	assert.NotSame(t, clients.Store, clients.PubSub)

	ctx := context.Background()
	sub := clients.PubSub.Subscribe(ctx, "session_updates:test")
	defer sub.Close()
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	// a subscribed PubSub connection must not block store traffic
	require.NoError(t, clients.Store.Ping(ctx).Err())
}
