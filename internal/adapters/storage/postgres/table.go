package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"dog-health-tracker/internal/domain/records"
)

// querier es lo mínimo que las tablas usan de pgxpool.Pool (o de una tx).
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// NewTables arma las tablas remotas sobre db.
func NewTables(db querier) *records.Tables {
	return &records.Tables{
		Dogs:             newTable[records.Dog](db),
		Medications:      newTable[records.Medication](db),
		MedicationLogs:   newTable[records.MedicationLog](db),
		Vaccinations:     newTable[records.Vaccination](db),
		WeightLogs:       newTable[records.WeightLog](db),
		VetVisits:        newTable[records.VetVisit](db),
		FoodLogs:         newTable[records.FoodLog](db),
		HealthLogs:       newTable[records.HealthLog](db),
		TherapySessions:  newTable[records.TherapySession](db),
		ReminderContacts: newTable[records.ReminderContact](db),
	}
}

type column struct {
	name  string
	index []int
	date  bool
}

var dateType = reflect.TypeOf(records.Date{})

// columnsOf recorre los tags db, entrando en los structs embebidos (Meta, Owned).
func columnsOf(t reflect.Type, prefix []int) []column {
	var out []column
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		idx := append(append([]int{}, prefix...), i)
		tag := f.Tag.Get("db")
		if f.Anonymous && tag == "" && f.Type.Kind() == reflect.Struct {
			out = append(out, columnsOf(f.Type, idx)...)
			continue
		}
		if tag == "" || tag == "-" || !f.IsExported() {
			continue
		}
		out = append(out, column{name: tag, index: idx, date: f.Type == dateType})
	}
	return out
}

// argOf resuelve los driver.Valuer (Date, Number) antes de pasarlos a pgx.
func argOf(v reflect.Value) (any, error) {
	x := v.Interface()
	if val, ok := x.(driver.Valuer); ok {
		return val.Value()
	}
	return x, nil
}

type table[T any, P records.EntityPtr[T]] struct {
	db      querier
	schema  records.Schema
	cols    []column
	byName  map[string]column
	selects string
}

func newTable[T any, P records.EntityPtr[T]](db querier) *table[T, P] {
	cols := columnsOf(reflect.TypeFor[T](), nil)
	names := make([]string, len(cols))
	byName := make(map[string]column, len(cols))
	for i, c := range cols {
		names[i] = c.name
		byName[c.name] = c
	}
	return &table[T, P]{
		db:      db,
		schema:  records.SchemaOf[T, P](),
		cols:    cols,
		byName:  byName,
		selects: strings.Join(names, ", "),
	}
}

func (t *table[T, P]) fail(op string, err error) error {
	return &records.BackendError{Op: op, Table: t.schema.Table, Err: err}
}

func (t *table[T, P]) collect(rows pgx.Rows, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

func (t *table[T, P]) List(ctx context.Context, q records.Query) ([]T, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.DogID != "" {
		if _, ok := t.byName["dog_id"]; ok {
			where = append(where, "dog_id = "+arg(q.DogID))
		}
	}
	if q.MedicationID != "" {
		if _, ok := t.byName["medication_id"]; !ok {
			return nil, fmt.Errorf("%w: %s has no medication_id", records.ErrInvalidInput, t.schema.Table)
		}
		where = append(where, "medication_id = "+arg(q.MedicationID))
	}
	if q.ActiveOnly {
		if _, ok := t.byName["is_active"]; ok {
			where = append(where, "is_active IS NOT FALSE")
		}
	}
	if q.Field != "" && (!q.From.IsZero() || !q.To.IsZero() || !q.Before.IsZero()) {
		c, ok := t.byName[q.Field]
		if !ok || !c.date {
			return nil, fmt.Errorf("%w: %s is not a date column of %s", records.ErrInvalidInput, q.Field, t.schema.Table)
		}
		if !q.From.IsZero() {
			where = append(where, c.name+" >= "+arg(q.From.Time))
		}
		if !q.To.IsZero() {
			where = append(where, c.name+" <= "+arg(q.To.Time))
		}
		if !q.Before.IsZero() {
			where = append(where, c.name+" < "+arg(q.Before.Time))
		}
	}

	dir := "DESC"
	if t.schema.Ascending {
		dir = "ASC"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s", t.selects, t.schema.Table)
	if len(where) > 0 {
		sb.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	fmt.Fprintf(&sb, " ORDER BY %s %s NULLS LAST, created_at DESC", t.schema.Order, dir)
	if limit := q.EffectiveLimit(t.schema); limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", limit)
	}

	out, err := t.collect(t.db.Query(ctx, sb.String(), args...))
	if err != nil {
		return nil, t.fail("list", err)
	}
	return out, nil
}

func (t *table[T, P]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	sql := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", t.selects, t.schema.Table)
	rows, err := t.collect(t.db.Query(ctx, sql, id))
	if err != nil {
		return zero, t.fail("get", err)
	}
	if len(rows) == 0 {
		return zero, records.ErrNotFound
	}
	return rows[0], nil
}

func (t *table[T, P]) Insert(ctx context.Context, rec T) (T, error) {
	v := reflect.ValueOf(&rec).Elem()
	names := make([]string, 0, len(t.cols))
	marks := make([]string, 0, len(t.cols))
	args := make([]any, 0, len(t.cols))
	for _, c := range t.cols {
		a, err := argOf(v.FieldByIndex(c.index))
		if err != nil {
			return rec, err
		}
		names = append(names, c.name)
		args = append(args, a)
		marks = append(marks, fmt.Sprintf("$%d", len(args)))
	}
	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		t.schema.Table, strings.Join(names, ", "), strings.Join(marks, ", "), t.selects)

	rows, err := t.collect(t.db.Query(ctx, sql, args...))
	if err != nil {
		return rec, t.fail("insert", err)
	}
	if len(rows) != 1 {
		return rec, t.fail("insert", errors.New("no row returned"))
	}
	return rows[0], nil
}

// Update reescribe las columnas mutables. id y created_at no se tocan nunca.
func (t *table[T, P]) Update(ctx context.Context, rec T) (T, error) {
	v := reflect.ValueOf(&rec).Elem()
	args := []any{P(&rec).Identity().ID}
	sets := make([]string, 0, len(t.cols))
	for _, c := range t.cols {
		if c.name == "id" || c.name == "created_at" {
			continue
		}
		a, err := argOf(v.FieldByIndex(c.index))
		if err != nil {
			return rec, err
		}
		args = append(args, a)
		sets = append(sets, fmt.Sprintf("%s = $%d", c.name, len(args)))
	}
	sql := fmt.Sprintf("UPDATE %s SET %s WHERE id = $1 RETURNING %s",
		t.schema.Table, strings.Join(sets, ", "), t.selects)

	rows, err := t.collect(t.db.Query(ctx, sql, args...))
	if err != nil {
		return rec, t.fail("update", err)
	}
	if len(rows) == 0 {
		return rec, records.ErrNotFound
	}
	return rows[0], nil
}

func (t *table[T, P]) Delete(ctx context.Context, id string) error {
	tag, err := t.db.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", t.schema.Table), id)
	if err != nil {
		return t.fail("delete", err)
	}
	if tag.RowsAffected() == 0 {
		return records.ErrNotFound
	}
	return nil
}

func (t *table[T, P]) DeleteByOwner(ctx context.Context, dogID string) error {
	if _, ok := t.byName["dog_id"]; !ok {
		return fmt.Errorf("%s has no dog_id", t.schema.Table)
	}
	_, err := t.db.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE dog_id = $1", t.schema.Table), dogID)
	if err != nil {
		return t.fail("delete by dog", err)
	}
	return nil
}
