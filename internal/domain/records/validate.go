package records

import (
	"fmt"
	"strings"
)

// Validate se llama en la capa HTTP antes de tocar el store.
// Devuelve un error que envuelve ErrInvalidInput.

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...)
}

func required(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return invalid("%s is required", field)
	}
	return nil
}

func enum[E ~string](field string, v E, allowed []E) error {
	if v == "" || oneOf(v, allowed) {
		return nil
	}
	return invalid("%s %q is not allowed", field, string(v))
}

func positive(field string, n Number) error {
	if n.Valid && n.Float64 < 0 {
		return invalid("%s must not be negative", field)
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (d Dog) Validate() error {
	return firstErr(
		required("name", d.Name),
		enum("gender", d.Gender, []Gender{GenderMale, GenderFemale}),
	)
}

func (m Medication) Validate() error {
	var err error
	if m.TimesPerDay < 0 {
		err = invalid("times_per_day must not be negative")
	}
	if !m.StartDate.IsZero() && !m.EndDate.IsZero() && m.EndDate.Before(m.StartDate.Time) {
		err = invalid("end_date is before start_date")
	}
	return firstErr(
		required("name", m.Name),
		enum("frequency", m.Frequency, Frequencies),
		err,
	)
}

func (v Vaccination) Validate() error {
	if err := required("name", v.Name); err != nil {
		return err
	}
	if v.DateGiven.IsZero() {
		return invalid("date_given is required")
	}
	return nil
}

func (w WeightLog) Validate() error {
	if !w.Weight.Valid {
		return invalid("weight is required")
	}
	if w.Weight.Float64 <= 0 {
		return invalid("weight must be positive")
	}
	if w.Date.IsZero() {
		return invalid("date is required")
	}
	return enum("unit", w.Unit, []WeightUnit{UnitKg, UnitLbs})
}

func (v VetVisit) Validate() error {
	if v.Date.IsZero() {
		return invalid("date is required")
	}
	return firstErr(required("reason", v.Reason), positive("cost", v.Cost))
}

func (f FoodLog) Validate() error {
	if f.Date.IsZero() {
		return invalid("date is required")
	}
	return firstErr(
		enum("food_type", f.FoodType, FoodTypes),
		enum("meal_time", f.MealTime, MealTimes),
		positive("amount_grams", f.AmountGrams),
	)
}

func (h HealthLog) Validate() error {
	if h.Date.IsZero() {
		return invalid("date is required")
	}
	return firstErr(
		enum("energy_level", h.EnergyLevel, EnergyLevels),
		enum("appetite", h.Appetite, Appetites),
	)
}

func (t TherapySession) Validate() error {
	if t.Date.IsZero() {
		return invalid("date is required")
	}
	return firstErr(
		required("session_type", string(t.SessionType)),
		enum("session_type", t.SessionType, SessionTypes),
		positive("duration_minutes", t.DurationMinutes),
		positive("cost", t.Cost),
	)
}

func (c ReminderContact) Validate() error {
	email := strings.TrimSpace(c.Email)
	if email == "" && strings.TrimSpace(c.Phone) == "" {
		return invalid("email or phone is required")
	}
	if email != "" && !strings.Contains(email, "@") {
		return invalid("email %q is not valid", email)
	}
	if c.DaysBefore < 0 {
		return invalid("days_before must not be negative")
	}
	return nil
}
