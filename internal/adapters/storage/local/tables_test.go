package local

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dog-health-tracker/internal/adapters/storage/memory"
	"dog-health-tracker/internal/domain/records"
	"dog-health-tracker/internal/ports/kv"
)

// slowKV demora cada transformación para que dos réplicas se solapen.
type slowKV struct {
	kv.Store
	delay time.Duration
}

func (s slowKV) Update(ctx context.Context, key string, fn kv.UpdateFunc) error {
	return s.Store.Update(ctx, key, func(cur []byte, ok bool) ([]byte, error) {
		time.Sleep(s.delay)
		return fn(cur, ok)
	})
}

func TestMalformedValueReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKV()
	require.NoError(t, store.Set(ctx, "dogapp_dogs", []byte("{not json")))

	tables := NewTables(store, "", nil)
	dogs, err := tables.Dogs.List(ctx, records.Query{})
	require.NoError(t, err)
	assert.Empty(t, dogs)

	_, err = tables.Dogs.Get(ctx, "x")
	assert.ErrorIs(t, err, records.ErrNotFound)

	// La primera escritura reemplaza el valor corrupto.
	_, err = tables.Dogs.Insert(ctx, records.Dog{Meta: records.Meta{ID: "a", CreatedAt: time.Now().UTC()}, Name: "Rex"})
	require.NoError(t, err)
	dogs, err = tables.Dogs.List(ctx, records.Query{})
	require.NoError(t, err)
	assert.Len(t, dogs, 1)
}

func TestNumbersPersistAsNumbersOrNull(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKV()
	tables := NewTables(store, "dogapp_", nil)

	_, err := tables.FoodLogs.Insert(ctx, records.FoodLog{
		Meta:  records.Meta{ID: "f1"},
		Owned: records.Owned{DogID: "d1"},
		Date:  records.NewDate(2026, 2, 1),
	})
	require.NoError(t, err)
	_, err = tables.WeightLogs.Insert(ctx, records.WeightLog{
		Meta:   records.Meta{ID: "w1"},
		Owned:  records.Owned{DogID: "d1"},
		Weight: records.NewNumber(12.5),
	})
	require.NoError(t, err)

	raw, ok, err := store.Get(ctx, "dogapp_food_logs")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(raw), `"amount_grams":null`)

	raw, _, err = store.Get(ctx, "dogapp_weight_logs")
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"weight":12.5`)
}

func TestDeleteByOwnerLeavesOtherDogs(t *testing.T) {
	ctx := context.Background()
	tables := NewTables(memory.NewKV(), "dogapp_", nil)

	for i, dog := range []string{"d1", "d2", "d1"} {
		_, err := tables.HealthLogs.Insert(ctx, records.HealthLog{
			Meta:  records.Meta{ID: string(rune('a' + i))},
			Owned: records.Owned{DogID: dog},
			Date:  records.NewDate(2026, 1, i+1),
		})
		require.NoError(t, err)
	}

	require.NoError(t, tables.HealthLogs.DeleteByOwner(ctx, "d1"))

	rest, err := tables.HealthLogs.List(ctx, records.Query{})
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "d2", rest[0].DogID)
}

func TestTwoReplicasOnSharedStoreKeepEveryWrite(t *testing.T) {
	ctx := context.Background()
	shared := slowKV{Store: memory.NewKV(), delay: 200 * time.Microsecond}
	replicas := []*records.Tables{
		NewTables(shared, "dogapp_", nil),
		NewTables(shared, "dogapp_", nil),
	}

	const n = 200
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := replicas[i%2].Dogs.Insert(ctx, records.Dog{
				Meta: records.Meta{ID: fmt.Sprintf("dog-%03d", i), CreatedAt: time.Now().UTC()},
				Name: "Rex",
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	dogs, err := replicas[0].Dogs.List(ctx, records.Query{Limit: -1})
	require.NoError(t, err)
	assert.Len(t, dogs, n)

	// Un update y un borrado concurrentes desde réplicas distintas tampoco se pisan.
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := replicas[0].Dogs.Update(ctx, records.Dog{Meta: records.Meta{ID: "dog-000"}, Name: "Renamed"})
		assert.NoError(t, err)
	}()
	go func() {
		defer wg.Done()
		assert.NoError(t, replicas[1].Dogs.Delete(ctx, "dog-001"))
	}()
	wg.Wait()

	dogs, err = replicas[1].Dogs.List(ctx, records.Query{Limit: -1})
	require.NoError(t, err)
	assert.Len(t, dogs, n-1)
	got, err := replicas[1].Dogs.Get(ctx, "dog-000")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
}

func TestDuplicateAndMissingIDs(t *testing.T) {
	ctx := context.Background()
	tables := NewTables(memory.NewKV(), "dogapp_", nil)

	_, err := tables.Dogs.Insert(ctx, records.Dog{Meta: records.Meta{ID: "a"}, Name: "Rex"})
	require.NoError(t, err)
	_, err = tables.Dogs.Insert(ctx, records.Dog{Meta: records.Meta{ID: "a"}, Name: "Copy"})
	assert.Error(t, err)

	_, err = tables.Dogs.Update(ctx, records.Dog{Meta: records.Meta{ID: "missing"}, Name: "Ghost"})
	assert.ErrorIs(t, err, records.ErrNotFound)

	dogs, err := tables.Dogs.List(ctx, records.Query{})
	require.NoError(t, err)
	require.Len(t, dogs, 1)
	assert.Equal(t, "Rex", dogs[0].Name)
}

func TestListRejectsFiltersTheTableCannotAnswer(t *testing.T) {
	ctx := context.Background()
	tables := NewTables(memory.NewKV(), "dogapp_", nil)
	_, err := tables.Vaccinations.Insert(ctx, records.Vaccination{
		Meta: records.Meta{ID: "v1"}, Owned: records.Owned{DogID: "d1"}, Name: "Rabies",
		NextDueDate: records.NewDate(2026, 3, 12),
	})
	require.NoError(t, err)

	_, err = tables.Vaccinations.List(ctx, records.Query{DogID: "d1", Field: "name", From: records.NewDate(2026, 1, 1)})
	assert.ErrorIs(t, err, records.ErrInvalidInput)

	_, err = tables.Vaccinations.List(ctx, records.Query{DogID: "d1", MedicationID: "m1"})
	assert.ErrorIs(t, err, records.ErrInvalidInput)

	// Sin rango, field sólo define el orden y no se valida.
	rows, err := tables.Vaccinations.List(ctx, records.Query{DogID: "d1", Field: "name"})
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, err = tables.Vaccinations.List(ctx, records.Query{
		DogID: "d1", Field: "next_due_date", From: records.NewDate(2026, 3, 1), To: records.NewDate(2026, 3, 31),
	})
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	logs, err := tables.MedicationLogs.List(ctx, records.Query{DogID: "d1", MedicationID: "m1"})
	require.NoError(t, err)
	assert.Empty(t, logs)
}
