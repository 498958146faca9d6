package reminders

import (
	"context"
	"errors"
	"strings"

	"dog-health-tracker/internal/domain/records"
	"dog-health-tracker/internal/domain/settings"
)

// Prefs son los toggles por categoría del destinatario.
type Prefs struct {
	Medication  bool `json:"medication"`
	Vaccination bool `json:"vaccination"`
	Vet         bool `json:"vet"`
	Therapy     bool `json:"therapy"`
}

func AllOn() Prefs { return Prefs{Medication: true, Vaccination: true, Vet: true, Therapy: true} }

func (p Prefs) allows(c Category) bool {
	switch c {
	case CategoryMedication:
		return p.Medication
	case CategoryVaccination:
		return p.Vaccination
	case CategoryVet:
		return p.Vet
	case CategoryTherapy:
		return p.Therapy
	}
	return true
}

// Recipient es a quién se le manda el digest de un perro.
type Recipient struct {
	Email string
	Phone string
	Prefs Prefs
	// DaysBefore 0 = ventana del job.
	DaysBefore int
	Source     string
}

func (r Recipient) reachable() bool {
	return strings.TrimSpace(r.Email) != "" || strings.TrimSpace(r.Phone) != ""
}

// RecipientLookup resuelve el destinatario de un perro. ok=false: no hay a quién mandar.
type RecipientLookup interface {
	Lookup(ctx context.Context, dog records.Dog) (Recipient, bool, error)
}

type LookupFunc func(ctx context.Context, dog records.Dog) (Recipient, bool, error)

func (f LookupFunc) Lookup(ctx context.Context, dog records.Dog) (Recipient, bool, error) {
	return f(ctx, dog)
}

// ContactLookup usa el ReminderContact del perro.
type ContactLookup struct {
	Store *records.Store
}

func (l ContactLookup) Lookup(ctx context.Context, dog records.Dog) (Recipient, bool, error) {
	contacts, err := l.Store.ReminderContacts().Query(ctx, records.Query{DogID: dog.ID, Limit: 1})
	if err != nil {
		return Recipient{}, false, err
	}
	if len(contacts) == 0 {
		return Recipient{}, false, nil
	}
	c := contacts[0]
	r := Recipient{
		Email:      c.Email,
		Phone:      c.Phone,
		DaysBefore: c.DaysBefore,
		Source:     "contact",
		Prefs: Prefs{
			Medication:  records.Enabled(c.MedicationReminders),
			Vaccination: records.Enabled(c.VaccinationReminders),
			Vet:         records.Enabled(c.VetReminders),
			Therapy:     records.Enabled(c.TherapyReminders),
		},
	}
	return r, r.reachable(), nil
}

// SettingsLookup usa el email y los toggles de las preferencias locales.
type SettingsLookup struct {
	Settings *settings.Service
}

func (l SettingsLookup) Lookup(ctx context.Context, dog records.Dog) (Recipient, bool, error) {
	s, err := l.Settings.Get(ctx)
	if err != nil {
		return Recipient{}, false, err
	}
	// Sin reminderDaysBefore guardado manda REMINDER_WINDOW_DAYS.
	days, _, err := l.Settings.DaysBefore(ctx)
	if err != nil {
		return Recipient{}, false, err
	}
	r := Recipient{
		Email:      s.Email,
		DaysBefore: days,
		Source:     "settings",
		Prefs: Prefs{
			Medication:  s.MedicationReminders,
			Vaccination: s.VaccinationReminders,
			Vet:         s.VetReminders,
			Therapy:     s.TherapyReminders,
		},
	}
	return r, r.reachable(), nil
}

// Chain prueba cada lookup en orden y se queda con el primero que resuelve.
type Chain []RecipientLookup

func (c Chain) Lookup(ctx context.Context, dog records.Dog) (Recipient, bool, error) {
	var errs []error
	for _, l := range c {
		r, ok, err := l.Lookup(ctx, dog)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			return r, true, nil
		}
	}
	return Recipient{}, false, errors.Join(errs...)
}
