package records

import (
	"cmp"
	"context"
	"slices"
	"time"
)

// Entity es lo que toda fila persistible expone al Store y a los adapters.
type Entity interface {
	Identity() *Meta
	OwnerID() string
	Schema() Schema
	SortTime() time.Time
	// DateValue devuelve la columna de fecha nombrada; ok=false si no existe.
	DateValue(column string) (time.Time, bool)
}

// EntityPtr restringe los genéricos a *T que implementa Entity.
type EntityPtr[T any] interface {
	*T
	Entity
}

// Query filtra una tabla. Los campos vacíos no filtran.
type Query struct {
	DogID        string
	MedicationID string

	// Field es la columna de fecha sobre la que aplican From/To/Before.
	Field  string
	From   Date // inclusivo
	To     Date // inclusivo
	Before Date // estricto

	ActiveOnly bool

	// Limit 0 usa el límite de la tabla; negativo = sin límite.
	Limit int
}

// EffectiveLimit resuelve el límite de q contra el schema de la tabla. 0 = sin límite.
func (q Query) EffectiveLimit(s Schema) int {
	switch {
	case q.Limit == 0:
		return s.Limit
	case q.Limit < 0:
		return 0
	}
	return q.Limit
}

func (q Query) hasRange() bool {
	return !q.From.IsZero() || !q.To.IsZero() || !q.Before.IsZero()
}

// Table es el contrato CRUD que cada backend implementa por tabla.
type Table[T any] interface {
	List(ctx context.Context, q Query) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Insert(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, rec T) (T, error)
	Delete(ctx context.Context, id string) error
	DeleteByOwner(ctx context.Context, dogID string) error
}

// Tables agrupa las tablas de un backend.
type Tables struct {
	Dogs             Table[Dog]
	Medications      Table[Medication]
	MedicationLogs   Table[MedicationLog]
	Vaccinations     Table[Vaccination]
	WeightLogs       Table[WeightLog]
	VetVisits        Table[VetVisit]
	FoodLogs         Table[FoodLog]
	HealthLogs       Table[HealthLog]
	TherapySessions  Table[TherapySession]
	ReminderContacts Table[ReminderContact]
}

func tableOf[T any](ts *Tables) Table[T] {
	var t any
	switch any(*new(T)).(type) {
	case Dog:
		t = ts.Dogs
	case Medication:
		t = ts.Medications
	case MedicationLog:
		t = ts.MedicationLogs
	case Vaccination:
		t = ts.Vaccinations
	case WeightLog:
		t = ts.WeightLogs
	case VetVisit:
		t = ts.VetVisits
	case FoodLog:
		t = ts.FoodLogs
	case HealthLog:
		t = ts.HealthLogs
	case TherapySession:
		t = ts.TherapySessions
	case ReminderContact:
		t = ts.ReminderContacts
	}
	tbl, _ := t.(Table[T])
	return tbl
}

// dependents en el orden en que se borran en cascada. Los logs primero.
var dependents = []func(ctx context.Context, ts *Tables, dogID string) error{
	func(ctx context.Context, ts *Tables, id string) error {
		return ts.MedicationLogs.DeleteByOwner(ctx, id)
	},
	func(ctx context.Context, ts *Tables, id string) error {
		return ts.Medications.DeleteByOwner(ctx, id)
	},
	func(ctx context.Context, ts *Tables, id string) error {
		return ts.Vaccinations.DeleteByOwner(ctx, id)
	},
	func(ctx context.Context, ts *Tables, id string) error {
		return ts.WeightLogs.DeleteByOwner(ctx, id)
	},
	func(ctx context.Context, ts *Tables, id string) error {
		return ts.VetVisits.DeleteByOwner(ctx, id)
	},
	func(ctx context.Context, ts *Tables, id string) error {
		return ts.FoodLogs.DeleteByOwner(ctx, id)
	},
	func(ctx context.Context, ts *Tables, id string) error {
		return ts.HealthLogs.DeleteByOwner(ctx, id)
	},
	func(ctx context.Context, ts *Tables, id string) error {
		return ts.TherapySessions.DeleteByOwner(ctx, id)
	},
	func(ctx context.Context, ts *Tables, id string) error {
		return ts.ReminderContacts.DeleteByOwner(ctx, id)
	},
}

// DependentTables lista las tablas que cuelgan de dogs.
func DependentTables() []string {
	return []string{
		TableMedicationLogs, TableMedications, TableVaccinations, TableWeightLogs,
		TableVetVisits, TableFoodLogs, TableHealthLogs, TableTherapySessions,
		TableReminderContacts,
	}
}

// SchemaOf devuelve el schema de T sin necesitar una instancia.
func SchemaOf[T any, P EntityPtr[T]]() Schema {
	var zero T
	return P(&zero).Schema()
}

type medicationRef interface{ MedicationRef() string }
type activeFlag interface{ Active() bool }

// CheckQuery rechaza filtros que T no puede cumplir: un rango sobre una
// columna que no es fecha o medication_id en una tabla que no lo tiene.
// Postgres responde igual desde su lista de columnas.
func CheckQuery[T any, P EntityPtr[T]](q Query) error {
	var zero T
	e := P(&zero)
	if q.Field != "" && q.hasRange() {
		if _, ok := e.DateValue(q.Field); !ok {
			return invalid("%s is not a date column of %s", q.Field, e.Schema().Table)
		}
	}
	if q.MedicationID != "" {
		if _, ok := any(e).(medicationRef); !ok {
			return invalid("%s has no medication_id", e.Schema().Table)
		}
	}
	return nil
}

// Matches evalúa q en memoria. Lo usan los backends que no tienen SQL.
func Matches(e Entity, q Query) bool {
	if q.DogID != "" && e.OwnerID() != q.DogID {
		return false
	}
	if q.MedicationID != "" {
		m, ok := e.(medicationRef)
		if !ok || m.MedicationRef() != q.MedicationID {
			return false
		}
	}
	if q.ActiveOnly {
		if a, ok := e.(activeFlag); ok && !a.Active() {
			return false
		}
	}
	if q.Field != "" && q.hasRange() {
		t, ok := e.DateValue(q.Field)
		if !ok || t.IsZero() {
			return false
		}
		if !q.From.IsZero() && t.Before(q.From.Time) {
			return false
		}
		if !q.To.IsZero() && t.After(q.To.Time) {
			return false
		}
		if !q.Before.IsZero() && !t.Before(q.Before.Time) {
			return false
		}
	}
	return true
}

// Arrange ordena rows según el schema (empates: created_at desc) y aplica limit.
func Arrange[T any, P EntityPtr[T]](rows []T, limit int) []T {
	schema := SchemaOf[T, P]()
	slices.SortStableFunc(rows, func(a, b T) int {
		pa, pb := P(&a), P(&b)
		c := pa.SortTime().Compare(pb.SortTime())
		if !schema.Ascending {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(pb.Identity().CreatedAt.UnixNano(), pa.Identity().CreatedAt.UnixNano())
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
