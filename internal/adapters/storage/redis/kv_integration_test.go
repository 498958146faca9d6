//go:build integration

package redis

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestKV_AgainstRedis(t *testing.T) {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	store, err := Open(ctx, "redis://"+endpoint+"/0")
	require.NoError(t, err)
	defer store.Close()

	_, ok, err := store.Get(ctx, "dogapp_settings")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "dogapp_settings", []byte(`{"email":"a@b.c"}`)))
	v, ok, err := store.Get(ctx, "dogapp_settings")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"email":"a@b.c"}`, string(v))

	// Dos clientes = dos réplicas del API incrementando la misma clave.
	other, err := Open(ctx, "redis://"+endpoint+"/0")
	require.NoError(t, err)
	defer other.Close()

	incr := func(cur []byte, ok bool) ([]byte, error) {
		n := 0
		if ok {
			n, _ = strconv.Atoi(string(cur))
		}
		return []byte(strconv.Itoa(n + 1)), nil
	}
	const perClient = 50
	var wg sync.WaitGroup
	for _, s := range []*KV{store, other} {
		for i := 0; i < perClient; i++ {
			wg.Add(1)
			go func(s *KV) {
				defer wg.Done()
				assert.NoError(t, s.Update(ctx, "counter", incr))
			}(s)
		}
	}
	wg.Wait()

	v, _, err = store.Get(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(2*perClient), string(v))
}
