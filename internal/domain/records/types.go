package records

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout es el formato de fecha civil usado en JSON y en la API (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Date es una fecha civil sin hora, normalizada a medianoche UTC.
// El valor cero significa "sin fecha" (null en JSON y en la base).
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf toma el día calendario de t en su propia zona horaria.
func DateOf(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate acepta YYYY-MM-DD o RFC3339. Un string vacío es una fecha ausente.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return DateOf(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrInvalidInput, s)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) AddDays(n int) Date {
	if d.IsZero() {
		return d
	}
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: date must be a string", ErrInvalidInput)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implementa sql.Scanner (columnas DATE).
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = DateOf(v)
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
	default:
		return fmt.Errorf("records: cannot scan %T into Date", src)
	}
	return nil
}

// Value implementa driver.Valuer: fecha ausente => NULL.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

// Number es un valor numérico opcional. Nunca guarda NaN ni Inf:
// en JSON acepta 12.5, "12.5", "" y null; "" y null quedan como ausente.
type Number struct {
	Float64 float64
	Valid   bool
}

func NewNumber(f float64) Number {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}
	}
	return Number{Float64: f, Valid: true}
}

// ParseNumber convierte la entrada de formulario a número. Vacío => ausente.
func ParseNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Number{}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, s)
	}
	return Number{Float64: f, Valid: true}, nil
}

// Ptr devuelve nil cuando el número está ausente.
func (n Number) Ptr() *float64 {
	if !n.Valid {
		return nil
	}
	f := n.Float64
	return &f
}

func (n Number) sanitize() Number {
	if !n.Valid {
		return Number{}
	}
	return NewNumber(n.Float64)
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(n.Float64, 'f', -1, 64)), nil
}

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*n = Number{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("%w: invalid number", ErrInvalidInput)
		}
		parsed, err := ParseNumber(s)
		if err != nil {
			return err
		}
		*n = parsed
		return nil
	}
	parsed, err := ParseNumber(string(b))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Scan implementa sql.Scanner (NUMERIC puede llegar como string).
func (n *Number) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*n = Number{}
	case float64:
		*n = NewNumber(v)
	case float32:
		*n = NewNumber(float64(v))
	case int64:
		*n = NewNumber(float64(v))
	case int32:
		*n = NewNumber(float64(v))
	case string:
		parsed, err := ParseNumber(v)
		if err != nil {
			return err
		}
		*n = parsed
	case []byte:
		parsed, err := ParseNumber(string(v))
		if err != nil {
			return err
		}
		*n = parsed
	default:
		return fmt.Errorf("records: cannot scan %T into Number", src)
	}
	return nil
}

func (n Number) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Float64, nil
}
