package records_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dog-health-tracker/internal/adapters/storage/local"
	"dog-health-tracker/internal/adapters/storage/memory"
	"dog-health-tracker/internal/domain/records"
)

// -------------------------
// Helpers
// -------------------------

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newLocalStore(t *testing.T, remote records.Remote) (*records.Store, *testClock) {
	t.Helper()
	clock := &testClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	n := 0
	ids := func() string {
		n++
		return fmt.Sprintf("id-%03d", n)
	}
	tables := local.NewTables(memory.NewKV(), "dogapp_", nil)
	return records.NewStore(remote, tables, records.WithClock(clock.now), records.WithIDs(ids)), clock
}

func mustDog(t *testing.T, s *records.Store, name string) records.Dog {
	t.Helper()
	d, err := s.Dogs().Save(context.Background(), records.Dog{Name: name})
	require.NoError(t, err)
	return d
}

// switchableRemote simula un remoto que se configura/desconfigura en caliente.
type switchableRemote struct {
	on     bool
	tables *records.Tables
	err    error
}

func (r *switchableRemote) RemoteConfigured() bool { return r.on }
func (r *switchableRemote) Tables(ctx context.Context) (*records.Tables, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.tables, nil
}

// -------------------------
// Tests
// -------------------------

func TestSave_InsertAssignsIdentity(t *testing.T) {
	s, _ := newLocalStore(t, nil)
	ctx := context.Background()

	d, err := s.Dogs().Save(ctx, records.Dog{Name: "  Rex ", Breed: "Beagle"})
	require.NoError(t, err)

	assert.Equal(t, "id-001", d.ID)
	assert.False(t, d.CreatedAt.IsZero())
	assert.Equal(t, "Rex", d.Name)
	assert.Equal(t, records.GenderMale, d.Gender)

	got, err := s.Dogs().Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestSave_UpdateKeepsIDAndCreatedAt(t *testing.T) {
	s, _ := newLocalStore(t, nil)
	ctx := context.Background()
	d := mustDog(t, s, "Rex")

	edit := d
	edit.Name = "Rexy"
	edit.CreatedAt = time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	updated, err := s.Dogs().Save(ctx, edit)
	require.NoError(t, err)

	assert.Equal(t, d.ID, updated.ID)
	assert.True(t, d.CreatedAt.Equal(updated.CreatedAt))
	assert.Equal(t, "Rexy", updated.Name)

	all, err := s.Dogs().List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSave_UpdateUnknownID(t *testing.T) {
	s, _ := newLocalStore(t, nil)
	_, err := s.Dogs().Save(context.Background(), records.Dog{Meta: records.Meta{ID: "ghost"}, Name: "X"})
	assert.ErrorIs(t, err, records.ErrNotFound)
}

func TestSave_OwnerMustExist(t *testing.T) {
	s, _ := newLocalStore(t, nil)
	ctx := context.Background()

	_, err := s.WeightLogs().Save(ctx, records.WeightLog{
		Owned:  records.Owned{DogID: "nope"},
		Weight: records.NewNumber(12.5),
		Date:   records.NewDate(2026, 3, 1),
	})
	assert.ErrorIs(t, err, records.ErrOwnerNotFound)

	_, err = s.WeightLogs().Save(ctx, records.WeightLog{Weight: records.NewNumber(1)})
	assert.ErrorIs(t, err, records.ErrInvalidInput)
}

func TestMedication_ActiveDefaultsToTrue(t *testing.T) {
	s, _ := newLocalStore(t, nil)
	ctx := context.Background()
	d := mustDog(t, s, "Rex")

	m, err := s.Medications().Save(ctx, records.Medication{Owned: records.Owned{DogID: d.ID}, Name: "Apoquel"})
	require.NoError(t, err)
	require.NotNil(t, m.IsActive)
	assert.True(t, *m.IsActive)
	assert.Equal(t, records.FrequencyDaily, m.Frequency)

	off := false
	_, err = s.Medications().Save(ctx, records.Medication{Owned: records.Owned{DogID: d.ID}, Name: "Old", IsActive: &off})
	require.NoError(t, err)

	active, err := s.Medications().Query(ctx, records.Query{DogID: d.ID, ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Apoquel", active[0].Name)
}

func TestMedicationLogs_AppendOnlyAndLimited(t *testing.T) {
	s, _ := newLocalStore(t, nil)
	ctx := context.Background()
	d := mustDog(t, s, "Rex")
	m, err := s.Medications().Save(ctx, records.Medication{Owned: records.Owned{DogID: d.ID}, Name: "Apoquel"})
	require.NoError(t, err)

	var last records.MedicationLog
	for i := 0; i < 35; i++ {
		last, err = s.LogMedicationGiven(ctx, d.ID, m.ID, "")
		require.NoError(t, err)
	}

	logs, err := s.MedicationLogs().Query(ctx, records.Query{DogID: d.ID, MedicationID: m.ID})
	require.NoError(t, err)
	assert.Len(t, logs, 30)
	assert.Equal(t, last.ID, logs[0].ID, "newest first")

	_, err = s.MedicationLogs().Save(ctx, last)
	assert.ErrorIs(t, err, records.ErrAppendOnly)
	assert.ErrorIs(t, s.MedicationLogs().Delete(ctx, last.ID), records.ErrAppendOnly)

	_, err = s.LogMedicationGiven(ctx, "other-dog", m.ID, "")
	assert.ErrorIs(t, err, records.ErrNotFound)
}

func TestList_OrderingAndFoodLimit(t *testing.T) {
	s, _ := newLocalStore(t, nil)
	ctx := context.Background()
	d := mustDog(t, s, "Rex")

	for i := 0; i < 65; i++ {
		_, err := s.FoodLogs().Save(ctx, records.FoodLog{
			Owned:       records.Owned{DogID: d.ID},
			Date:        records.NewDate(2026, 1, 1).AddDays(i),
			AmountGrams: records.NewNumber(100),
		})
		require.NoError(t, err)
	}
	food, err := s.FoodLogs().List(ctx, d.ID)
	require.NoError(t, err)
	require.Len(t, food, 60)
	assert.Equal(t, "2026-03-06", food[0].Date.String())

	all, err := s.FoodLogs().Query(ctx, records.Query{DogID: d.ID, Limit: -1})
	require.NoError(t, err)
	assert.Len(t, all, 65)

	second := mustDog(t, s, "Luna")
	dogs, err := s.Dogs().List(ctx, "")
	require.NoError(t, err)
	require.Len(t, dogs, 2)
	assert.Equal(t, d.ID, dogs[0].ID, "dogs oldest first")
	assert.Equal(t, second.ID, dogs[1].ID)

	active, err := s.ActiveDog(ctx)
	require.NoError(t, err)
	assert.Equal(t, d.ID, active.ID)
}

func TestQuery_DateRanges(t *testing.T) {
	s, _ := newLocalStore(t, nil)
	ctx := context.Background()
	d := mustDog(t, s, "Rex")

	for _, due := range []records.Date{records.NewDate(2026, 3, 1), records.NewDate(2026, 3, 4), records.NewDate(2026, 3, 5), {}} {
		_, err := s.Vaccinations().Save(ctx, records.Vaccination{
			Owned:       records.Owned{DogID: d.ID},
			Name:        "Rabies",
			DateGiven:   records.NewDate(2025, 3, 1),
			NextDueDate: due,
		})
		require.NoError(t, err)
	}

	today := records.NewDate(2026, 3, 1)
	soon, err := s.Vaccinations().Query(ctx, records.Query{DogID: d.ID, Field: "next_due_date", From: today, To: today.AddDays(3)})
	require.NoError(t, err)
	assert.Len(t, soon, 2)

	overdue, err := s.Vaccinations().Query(ctx, records.Query{DogID: d.ID, Field: "next_due_date", Before: today.AddDays(1)})
	require.NoError(t, err)
	assert.Len(t, overdue, 1)
}

func TestDeleteDog_Cascades(t *testing.T) {
	s, _ := newLocalStore(t, nil)
	ctx := context.Background()
	rex := mustDog(t, s, "Rex")
	luna := mustDog(t, s, "Luna")

	for _, d := range []records.Dog{rex, luna} {
		m, err := s.Medications().Save(ctx, records.Medication{Owned: records.Owned{DogID: d.ID}, Name: "Apoquel"})
		require.NoError(t, err)
		_, err = s.LogMedicationGiven(ctx, d.ID, m.ID, "")
		require.NoError(t, err)
		_, err = s.WeightLogs().Save(ctx, records.WeightLog{Owned: records.Owned{DogID: d.ID}, Weight: records.NewNumber(10), Date: records.NewDate(2026, 1, 1)})
		require.NoError(t, err)
		_, err = s.ReminderContacts().Save(ctx, records.ReminderContact{Owned: records.Owned{DogID: d.ID}, Email: "me@example.com"})
		require.NoError(t, err)
	}

	require.NoError(t, s.Dogs().Delete(ctx, rex.ID))

	_, err := s.Dogs().Get(ctx, rex.ID)
	assert.ErrorIs(t, err, records.ErrNotFound)

	meds, _ := s.Medications().List(ctx, rex.ID)
	logs, _ := s.MedicationLogs().List(ctx, rex.ID)
	weights, _ := s.WeightLogs().List(ctx, rex.ID)
	contacts, _ := s.ReminderContacts().List(ctx, rex.ID)
	assert.Empty(t, meds)
	assert.Empty(t, logs)
	assert.Empty(t, weights)
	assert.Empty(t, contacts)

	lunaWeights, _ := s.WeightLogs().List(ctx, luna.ID)
	assert.Len(t, lunaWeights, 1)

	assert.ErrorIs(t, s.Dogs().Delete(ctx, rex.ID), records.ErrNotFound)
}

func TestBackend_ResolvedPerCall(t *testing.T) {
	remote := &switchableRemote{tables: local.NewTables(memory.NewKV(), "remote_", nil)}
	s, _ := newLocalStore(t, remote)
	ctx := context.Background()

	assert.Equal(t, "local", s.Backend())
	mustDog(t, s, "LocalDog")

	remote.on = true
	assert.Equal(t, "remote", s.Backend())
	dogs, err := s.Dogs().List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, dogs, "remote starts empty")
	mustDog(t, s, "RemoteDog")

	remote.on = false
	dogs, err = s.Dogs().List(ctx, "")
	require.NoError(t, err)
	require.Len(t, dogs, 1)
	assert.Equal(t, "LocalDog", dogs[0].Name)
}

func TestBackend_RemoteFailurePropagates(t *testing.T) {
	boom := errors.New("connection refused")
	s, _ := newLocalStore(t, &switchableRemote{on: true, err: boom})

	_, err := s.Dogs().List(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	var be *records.BackendError
	assert.True(t, errors.As(err, &be))
}
