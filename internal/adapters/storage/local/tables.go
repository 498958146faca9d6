package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"dog-health-tracker/internal/domain/records"
	"dog-health-tracker/internal/platform/logger"
	"dog-health-tracker/internal/ports/kv"
)

const DefaultNamespace = "dogapp_"

var errDuplicate = errors.New("duplicate id")

// backend no guarda estado propio: cada escritura es un kv.Update, así que
// varias réplicas sobre el mismo almacén no se pisan.
type backend struct {
	kv        kv.Store
	namespace string
	log       logger.Logger
}

// NewTables arma las tablas locales sobre kv. Cada tabla es una clave
// <namespace><tabla> con el array JSON completo.
func NewTables(store kv.Store, namespace string, log logger.Logger) *records.Tables {
	if strings.TrimSpace(namespace) == "" {
		namespace = DefaultNamespace
	}
	if log == nil {
		log = logger.Nop()
	}
	b := &backend{kv: store, namespace: namespace, log: log}
	return &records.Tables{
		Dogs:             newTable[records.Dog](b),
		Medications:      newTable[records.Medication](b),
		MedicationLogs:   newTable[records.MedicationLog](b),
		Vaccinations:     newTable[records.Vaccination](b),
		WeightLogs:       newTable[records.WeightLog](b),
		VetVisits:        newTable[records.VetVisit](b),
		FoodLogs:         newTable[records.FoodLog](b),
		HealthLogs:       newTable[records.HealthLog](b),
		TherapySessions:  newTable[records.TherapySession](b),
		ReminderContacts: newTable[records.ReminderContact](b),
	}
}

type table[T any, P records.EntityPtr[T]] struct {
	b   *backend
	key string
}

func newTable[T any, P records.EntityPtr[T]](b *backend) *table[T, P] {
	return &table[T, P]{b: b, key: b.namespace + records.SchemaOf[T, P]().Table}
}

// load lee la lista completa. Un valor ilegible cuenta como lista vacía.
func (t *table[T, P]) load(ctx context.Context) ([]T, error) {
	raw, ok, err := t.b.kv.Get(ctx, t.key)
	if err != nil {
		return nil, fmt.Errorf("local read %s: %w", t.key, err)
	}
	return t.decode(raw, ok), nil
}

func (t *table[T, P]) decode(raw []byte, ok bool) []T {
	if !ok || len(raw) == 0 {
		return []T{}
	}
	var rows []T
	if err := json.Unmarshal(raw, &rows); err != nil {
		t.b.log.Warn("local table unreadable, treating as empty", map[string]any{
			"key": t.key,
			"err": err,
		})
		return []T{}
	}
	return rows
}

// mutate aplica fn sobre la lista actual dentro de un kv.Update. Con
// changed=false no se escribe.
func (t *table[T, P]) mutate(ctx context.Context, fn func(rows []T) ([]T, bool, error)) error {
	err := t.b.kv.Update(ctx, t.key, func(cur []byte, ok bool) ([]byte, error) {
		rows, changed, err := fn(t.decode(cur, ok))
		if err != nil || !changed {
			return nil, err
		}
		return json.Marshal(rows)
	})
	if err != nil && !errors.Is(err, records.ErrNotFound) && !errors.Is(err, errDuplicate) {
		return fmt.Errorf("local write %s: %w", t.key, err)
	}
	return err
}

func (t *table[T, P]) List(ctx context.Context, q records.Query) ([]T, error) {
	if err := records.CheckQuery[T, P](q); err != nil {
		return nil, err
	}
	rows, err := t.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(rows))
	for i := range rows {
		if records.Matches(P(&rows[i]), q) {
			out = append(out, rows[i])
		}
	}
	return records.Arrange[T, P](out, q.EffectiveLimit(records.SchemaOf[T, P]())), nil
}

func (t *table[T, P]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	rows, err := t.load(ctx)
	if err != nil {
		return zero, err
	}
	for i := range rows {
		if P(&rows[i]).Identity().ID == id {
			return rows[i], nil
		}
	}
	return zero, records.ErrNotFound
}

func (t *table[T, P]) Insert(ctx context.Context, rec T) (T, error) {
	id := P(&rec).Identity().ID
	err := t.mutate(ctx, func(rows []T) ([]T, bool, error) {
		for i := range rows {
			if P(&rows[i]).Identity().ID == id {
				return nil, false, fmt.Errorf("local insert %s: %w %s", t.key, errDuplicate, id)
			}
		}
		// Lo más nuevo adelante, como lo guarda el navegador.
		return append([]T{rec}, rows...), true, nil
	})
	return rec, err
}

func (t *table[T, P]) Update(ctx context.Context, rec T) (T, error) {
	meta := P(&rec).Identity()
	err := t.mutate(ctx, func(rows []T) ([]T, bool, error) {
		for i := range rows {
			cur := P(&rows[i]).Identity()
			if cur.ID != meta.ID {
				continue
			}
			meta.CreatedAt = cur.CreatedAt
			rows[i] = rec
			return rows, true, nil
		}
		return nil, false, records.ErrNotFound
	})
	return rec, err
}

func (t *table[T, P]) Delete(ctx context.Context, id string) error {
	return t.remove(ctx, func(e records.Entity) bool { return e.Identity().ID == id })
}

func (t *table[T, P]) DeleteByOwner(ctx context.Context, dogID string) error {
	return t.remove(ctx, func(e records.Entity) bool { return e.OwnerID() == dogID })
}

func (t *table[T, P]) remove(ctx context.Context, match func(records.Entity) bool) error {
	return t.mutate(ctx, func(rows []T) ([]T, bool, error) {
		kept := rows[:0]
		for i := range rows {
			if !match(P(&rows[i])) {
				kept = append(kept, rows[i])
			}
		}
		return kept, len(kept) != len(rows), nil
	})
}
