package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKV_RoundTripAndReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "local.db")

	store, err := Open(ctx, path)
	require.NoError(t, err)

	_, ok, err := store.Get(ctx, "dogapp_dogs")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "dogapp_dogs", []byte(`[{"id":"a"}]`)))
	require.NoError(t, store.Set(ctx, "dogapp_dogs", []byte(`[{"id":"b"}]`)))
	require.NoError(t, store.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get(ctx, "dogapp_dogs")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"b"}]`, string(v))
}

// Dos handles sobre el mismo archivo se comportan como dos procesos.
func TestKV_UpdateIsAtomicAcrossHandles(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "shared.db")

	a, err := Open(ctx, path)
	require.NoError(t, err)
	defer a.Close()
	b, err := Open(ctx, path)
	require.NoError(t, err)
	defer b.Close()

	incr := func(cur []byte, ok bool) ([]byte, error) {
		n := 0
		if ok {
			n, _ = strconv.Atoi(string(cur))
		}
		return []byte(strconv.Itoa(n + 1)), nil
	}

	const perHandle = 25
	var wg sync.WaitGroup
	for _, store := range []*KV{a, b} {
		for i := 0; i < perHandle; i++ {
			wg.Add(1)
			go func(s *KV) {
				defer wg.Done()
				assert.NoError(t, s.Update(ctx, "counter", incr))
			}(store)
		}
	}
	wg.Wait()

	v, ok, err := a.Get(ctx, "counter")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, strconv.Itoa(2*perHandle), string(v))
}

func TestKV_UpdateAbortsOnErrorAndSkipsNil(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set(ctx, "k", []byte("v1")))

	boom := errors.New("boom")
	err = store.Update(ctx, "k", func([]byte, bool) ([]byte, error) { return []byte("v2"), boom })
	assert.ErrorIs(t, err, boom)

	require.NoError(t, store.Update(ctx, "k", func(cur []byte, ok bool) ([]byte, error) {
		assert.True(t, ok)
		assert.Equal(t, "v1", string(cur))
		return nil, nil
	}))

	v, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", string(v))

	// La conexión quedó libre después del rollback.
	require.NoError(t, store.Set(ctx, "k", []byte("v3")))
}
