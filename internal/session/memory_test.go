package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(time.Hour)

	token, err := m.Create(ctx, 7, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := m.Resolve(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, 7, identity.UserID)
	assert.Equal(t, "admin", identity.Username)
}

func TestMemoryTokensAreUnique(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(time.Hour)

	t1, err := m.Create(ctx, 1, "a")
	require.NoError(t, err)
	t2, err := m.Create(ctx, 1, "a")
	require.NoError(t, err)
	assert.NotEqual(t, t1, t2)
}

func TestMemoryUnknownToken(t *testing.T) {
	m := NewMemory(time.Hour)

	identity, err := m.Resolve(context.Background(), "no-such-token")
	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestMemoryDestroyIsIdempotent(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(time.Hour)

	token, err := m.Create(ctx, 7, "admin")
	require.NoError(t, err)

	require.NoError(t, m.Destroy(ctx, token))
	require.NoError(t, m.Destroy(ctx, token))

	identity, err := m.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, identity, "destroyed token must not resolve again")
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(time.Millisecond)

	token, err := m.Create(ctx, 7, "admin")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	identity, err := m.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestMemorySweepDropsExpired(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(time.Millisecond)

	_, err := m.Create(ctx, 7, "admin")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	m.Sweep()

	m.mu.RLock()
	defer m.mu.RUnlock()
	assert.Empty(t, m.sessions)
}
