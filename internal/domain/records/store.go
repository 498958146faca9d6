package records

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"dog-health-tracker/internal/platform/logger"
	"dog-health-tracker/internal/ports/capabilities"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrOwnerNotFound = errors.New("dog not found")
	ErrAppendOnly    = errors.New("medication logs are append-only")
)

// BackendError envuelve una falla del backend remoto.
type BackendError struct {
	Op    string
	Table string
	Err   error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("remote %s %s: %v", e.Op, e.Table, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// Remote es el backend remoto: se consulta si está configurado y, si lo está,
// entrega sus tablas.
type Remote interface {
	capabilities.Backend
	Tables(ctx context.Context) (*Tables, error)
}

// Store decide en cada llamada entre el backend remoto y el local.
type Store struct {
	remote Remote
	local  *Tables
	log    logger.Logger

	now   func() time.Time
	newID func() string
}

type Option func(*Store)

func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }
func WithIDs(gen func() string) Option      { return func(s *Store) { s.newID = gen } }
func WithLogger(l logger.Logger) Option     { return func(s *Store) { s.log = l } }

// NewStore arma el store. remote puede ser nil: todo va al local.
func NewStore(remote Remote, local *Tables, opts ...Option) *Store {
	s := &Store{
		remote: remote,
		local:  local,
		log:    logger.Nop(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// RemoteConfigured implementa capabilities.Backend.
func (s *Store) RemoteConfigured() bool {
	return s.remote != nil && s.remote.RemoteConfigured()
}

// Backend devuelve "remote" o "local" según la configuración actual.
func (s *Store) Backend() string {
	if s.RemoteConfigured() {
		return "remote"
	}
	return "local"
}

// tables resuelve el backend una sola vez por operación.
func (s *Store) tables(ctx context.Context) (*Tables, error) {
	if !s.RemoteConfigured() {
		return s.local, nil
	}
	ts, err := s.remote.Tables(ctx)
	if err != nil {
		return nil, &BackendError{Op: "connect", Err: err}
	}
	return ts, nil
}

// Collection es la vista tipada del store para una tabla.
type Collection[T any, P EntityPtr[T]] struct {
	s *Store
}

func Of[T any, P EntityPtr[T]](s *Store) Collection[T, P] { return Collection[T, P]{s: s} }

func (s *Store) Dogs() Collection[Dog, *Dog] { return Of[Dog](s) }
func (s *Store) Medications() Collection[Medication, *Medication] {
	return Of[Medication](s)
}
func (s *Store) MedicationLogs() Collection[MedicationLog, *MedicationLog] {
	return Of[MedicationLog](s)
}
func (s *Store) Vaccinations() Collection[Vaccination, *Vaccination] {
	return Of[Vaccination](s)
}
func (s *Store) WeightLogs() Collection[WeightLog, *WeightLog] { return Of[WeightLog](s) }
func (s *Store) VetVisits() Collection[VetVisit, *VetVisit]    { return Of[VetVisit](s) }
func (s *Store) FoodLogs() Collection[FoodLog, *FoodLog]       { return Of[FoodLog](s) }
func (s *Store) HealthLogs() Collection[HealthLog, *HealthLog] { return Of[HealthLog](s) }
func (s *Store) TherapySessions() Collection[TherapySession, *TherapySession] {
	return Of[TherapySession](s)
}
func (s *Store) ReminderContacts() Collection[ReminderContact, *ReminderContact] {
	return Of[ReminderContact](s)
}

func (c Collection[T, P]) table(ctx context.Context) (Table[T], *Tables, error) {
	ts, err := c.s.tables(ctx)
	if err != nil {
		return nil, nil, err
	}
	tbl := tableOf[T](ts)
	if tbl == nil {
		return nil, nil, fmt.Errorf("records: no table for %s", SchemaOf[T, P]().Table)
	}
	return tbl, ts, nil
}

// List devuelve las filas de un perro (o todos los perros si T es Dog)
// con el orden y límite de la tabla.
func (c Collection[T, P]) List(ctx context.Context, dogID string) ([]T, error) {
	return c.Query(ctx, Query{DogID: dogID})
}

func (c Collection[T, P]) Query(ctx context.Context, q Query) ([]T, error) {
	tbl, _, err := c.table(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tbl.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

func (c Collection[T, P]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if strings.TrimSpace(id) == "" {
		return zero, ErrNotFound
	}
	tbl, _, err := c.table(ctx)
	if err != nil {
		return zero, err
	}
	return tbl.Get(ctx, id)
}

// Save inserta (sin id) o actualiza (con id). id y created_at nunca cambian.
func (c Collection[T, P]) Save(ctx context.Context, rec T) (T, error) {
	var zero T
	p := P(&rec)
	schema := p.Schema()
	meta := p.Identity()
	meta.ID = strings.TrimSpace(meta.ID)

	if schema.Table == TableMedicationLogs && meta.ID != "" {
		return zero, ErrAppendOnly
	}
	if n, ok := any(p).(interface{ normalize() }); ok {
		n.normalize()
	}

	tbl, ts, err := c.table(ctx)
	if err != nil {
		return zero, err
	}

	if schema.Dependent {
		owner := strings.TrimSpace(p.OwnerID())
		if owner == "" {
			return zero, fmt.Errorf("%w: dog_id is required", ErrInvalidInput)
		}
		if _, err := ts.Dogs.Get(ctx, owner); err != nil {
			if errors.Is(err, ErrNotFound) {
				return zero, ErrOwnerNotFound
			}
			return zero, err
		}
	}

	if meta.ID == "" {
		meta.ID = c.s.newID()
		meta.CreatedAt = c.s.now().UTC().Truncate(time.Microsecond)
		return tbl.Insert(ctx, rec)
	}

	existing, err := tbl.Get(ctx, meta.ID)
	if err != nil {
		return zero, err
	}
	meta.CreatedAt = P(&existing).Identity().CreatedAt
	return tbl.Update(ctx, rec)
}

// Delete borra una fila. Borrar un perro arrastra todos sus registros.
func (c Collection[T, P]) Delete(ctx context.Context, id string) error {
	schema := SchemaOf[T, P]()
	if schema.Table == TableMedicationLogs {
		return ErrAppendOnly
	}
	tbl, ts, err := c.table(ctx)
	if err != nil {
		return err
	}
	if _, err := tbl.Get(ctx, id); err != nil {
		return err
	}
	if schema.Table == TableDogs {
		return c.s.cascade(ctx, ts, id)
	}
	return tbl.Delete(ctx, id)
}

// cascade borra dependientes y después el perro. Sin rollback: si falla a
// mitad, lo borrado queda borrado.
func (s *Store) cascade(ctx context.Context, ts *Tables, dogID string) error {
	tables := DependentTables()
	for i, del := range dependents {
		if err := del(ctx, ts, dogID); err != nil {
			s.log.Error("cascade delete stopped", map[string]any{
				"dog_id": dogID,
				"table":  tables[i],
				"err":    err,
			})
			return fmt.Errorf("delete dog %s: %s: %w", dogID, tables[i], err)
		}
	}
	if err := ts.Dogs.Delete(ctx, dogID); err != nil {
		return fmt.Errorf("delete dog %s: %w", dogID, err)
	}
	return nil
}

// ActiveDog es el primer perro registrado. ErrNotFound si no hay ninguno.
func (s *Store) ActiveDog(ctx context.Context) (Dog, error) {
	dogs, err := s.Dogs().Query(ctx, Query{Limit: 1})
	if err != nil {
		return Dog{}, err
	}
	if len(dogs) == 0 {
		return Dog{}, ErrNotFound
	}
	return dogs[0], nil
}

// LogMedicationGiven registra una toma con given_at = ahora.
func (s *Store) LogMedicationGiven(ctx context.Context, dogID, medicationID, notes string) (MedicationLog, error) {
	med, err := s.Medications().Get(ctx, medicationID)
	if err != nil {
		return MedicationLog{}, err
	}
	if med.DogID != dogID {
		return MedicationLog{}, ErrNotFound
	}
	return s.MedicationLogs().Save(ctx, MedicationLog{
		Owned:        Owned{DogID: dogID},
		MedicationID: medicationID,
		GivenAt:      s.now().UTC().Truncate(time.Microsecond),
		Notes:        strings.TrimSpace(notes),
	})
}
