package records

import (
	"strings"
	"time"
)

// Nombres de tabla (remoto) y de namespace (almacenamiento local).
const (
	TableDogs             = "dogs"
	TableMedications      = "medications"
	TableMedicationLogs   = "medication_logs"
	TableVaccinations     = "vaccinations"
	TableWeightLogs       = "weight_logs"
	TableVetVisits        = "vet_visits"
	TableFoodLogs         = "food_logs"
	TableHealthLogs       = "health_logs"
	TableTherapySessions  = "therapy_sessions"
	TableReminderContacts = "reminder_contacts"
)

// Meta son los campos que asigna el store al insertar. No cambian nunca.
type Meta struct {
	ID        string    `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (m *Meta) Identity() *Meta { return m }

// Owned es la referencia al perro dueño del registro.
type Owned struct {
	DogID string `json:"dog_id" db:"dog_id"`
}

func (o Owned) OwnerID() string { return o.DogID }

// Schema describe cómo se ordena y limita una tabla.
type Schema struct {
	Table     string
	Order     string // columna de orden
	Ascending bool
	Limit     int // 0 = sin límite
	Dependent bool
}

type Dog struct {
	Meta
	Name            string `json:"name" db:"name"`
	Breed           string `json:"breed" db:"breed"`
	DateOfBirth     Date   `json:"date_of_birth" db:"date_of_birth"`
	Gender          Gender `json:"gender" db:"gender"`
	Color           string `json:"color" db:"color"`
	MicrochipNumber string `json:"microchip_number" db:"microchip_number"`
	AvatarURL       string `json:"avatar_url" db:"avatar_url"`
}

func (Dog) OwnerID() string { return "" }
func (Dog) Schema() Schema {
	return Schema{Table: TableDogs, Order: "created_at", Ascending: true}
}
func (d Dog) SortTime() time.Time { return d.CreatedAt }
func (d Dog) DateValue(column string) (time.Time, bool) {
	if column == "date_of_birth" {
		return d.DateOfBirth.Time, true
	}
	return time.Time{}, false
}
func (d *Dog) normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Breed = strings.TrimSpace(d.Breed)
	if d.Gender == "" {
		d.Gender = GenderMale
	}
}

type Medication struct {
	Meta
	Owned
	Name        string    `json:"name" db:"name"`
	Dosage      string    `json:"dosage" db:"dosage"`
	Frequency   Frequency `json:"frequency" db:"frequency"`
	TimesPerDay int       `json:"times_per_day" db:"times_per_day"`
	StartDate   Date      `json:"start_date" db:"start_date"`
	EndDate     Date      `json:"end_date" db:"end_date"`
	Notes       string    `json:"notes" db:"notes"`
	IsActive    *bool     `json:"is_active" db:"is_active"`
}

func (Medication) Schema() Schema {
	return Schema{Table: TableMedications, Order: "created_at", Dependent: true}
}
func (m Medication) SortTime() time.Time { return m.CreatedAt }
func (m Medication) DateValue(column string) (time.Time, bool) {
	switch column {
	case "start_date":
		return m.StartDate.Time, true
	case "end_date":
		return m.EndDate.Time, true
	}
	return time.Time{}, false
}

// Active: un is_active nunca seteado cuenta como activo.
func (m Medication) Active() bool { return m.IsActive == nil || *m.IsActive }

func (m *Medication) normalize() {
	m.Name = strings.TrimSpace(m.Name)
	m.Dosage = strings.TrimSpace(m.Dosage)
	if m.IsActive == nil {
		active := true
		m.IsActive = &active
	}
	if m.Frequency == "" {
		m.Frequency = FrequencyDaily
	}
	if m.TimesPerDay <= 0 {
		m.TimesPerDay = 1
	}
}

// MedicationLog es append-only: una entrada por toma.
type MedicationLog struct {
	Meta
	Owned
	MedicationID string    `json:"medication_id" db:"medication_id"`
	GivenAt      time.Time `json:"given_at" db:"given_at"`
	Notes        string    `json:"notes" db:"notes"`
}

func (MedicationLog) Schema() Schema {
	return Schema{Table: TableMedicationLogs, Order: "given_at", Limit: 30, Dependent: true}
}
func (l MedicationLog) SortTime() time.Time                { return l.GivenAt }
func (l MedicationLog) MedicationRef() string              { return l.MedicationID }
func (l MedicationLog) DateValue(string) (time.Time, bool) { return time.Time{}, false }

type Vaccination struct {
	Meta
	Owned
	Name        string `json:"name" db:"name"`
	DateGiven   Date   `json:"date_given" db:"date_given"`
	NextDueDate Date   `json:"next_due_date" db:"next_due_date"`
	VetName     string `json:"vet_name" db:"vet_name"`
	BatchNumber string `json:"batch_number" db:"batch_number"`
	Notes       string `json:"notes" db:"notes"`
}

func (Vaccination) Schema() Schema {
	return Schema{Table: TableVaccinations, Order: "date_given", Dependent: true}
}
func (v Vaccination) SortTime() time.Time { return v.DateGiven.Time }
func (v Vaccination) DateValue(column string) (time.Time, bool) {
	switch column {
	case "date_given":
		return v.DateGiven.Time, true
	case "next_due_date":
		return v.NextDueDate.Time, true
	}
	return time.Time{}, false
}
func (v *Vaccination) normalize() { v.Name = strings.TrimSpace(v.Name) }

type WeightLog struct {
	Meta
	Owned
	Weight Number     `json:"weight" db:"weight"`
	Unit   WeightUnit `json:"unit" db:"unit"`
	Date   Date       `json:"date" db:"date"`
	Notes  string     `json:"notes" db:"notes"`
}

func (WeightLog) Schema() Schema {
	return Schema{Table: TableWeightLogs, Order: "date", Dependent: true}
}
func (w WeightLog) SortTime() time.Time { return w.Date.Time }
func (w WeightLog) DateValue(column string) (time.Time, bool) {
	if column == "date" {
		return w.Date.Time, true
	}
	return time.Time{}, false
}
func (w *WeightLog) normalize() {
	w.Weight = w.Weight.sanitize()
	if w.Unit == "" {
		w.Unit = UnitKg
	}
}

type VetVisit struct {
	Meta
	Owned
	Date            Date   `json:"date" db:"date"`
	Reason          string `json:"reason" db:"reason"`
	VetName         string `json:"vet_name" db:"vet_name"`
	ClinicName      string `json:"clinic_name" db:"clinic_name"`
	Diagnosis       string `json:"diagnosis" db:"diagnosis"`
	Treatment       string `json:"treatment" db:"treatment"`
	Cost            Number `json:"cost" db:"cost"`
	NextAppointment Date   `json:"next_appointment" db:"next_appointment"`
	Notes           string `json:"notes" db:"notes"`
}

func (VetVisit) Schema() Schema {
	return Schema{Table: TableVetVisits, Order: "date", Dependent: true}
}
func (v VetVisit) SortTime() time.Time { return v.Date.Time }
func (v VetVisit) DateValue(column string) (time.Time, bool) {
	switch column {
	case "date":
		return v.Date.Time, true
	case "next_appointment":
		return v.NextAppointment.Time, true
	}
	return time.Time{}, false
}
func (v *VetVisit) normalize() {
	v.Reason = strings.TrimSpace(v.Reason)
	v.Cost = v.Cost.sanitize()
}

type FoodLog struct {
	Meta
	Owned
	FoodType    FoodType `json:"food_type" db:"food_type"`
	Brand       string   `json:"brand" db:"brand"`
	AmountGrams Number   `json:"amount_grams" db:"amount_grams"`
	Date        Date     `json:"date" db:"date"`
	MealTime    MealTime `json:"meal_time" db:"meal_time"`
	Notes       string   `json:"notes" db:"notes"`
}

func (FoodLog) Schema() Schema {
	return Schema{Table: TableFoodLogs, Order: "date", Limit: 60, Dependent: true}
}
func (f FoodLog) SortTime() time.Time { return f.Date.Time }
func (f FoodLog) DateValue(column string) (time.Time, bool) {
	if column == "date" {
		return f.Date.Time, true
	}
	return time.Time{}, false
}
func (f *FoodLog) normalize() { f.AmountGrams = f.AmountGrams.sanitize() }

type HealthLog struct {
	Meta
	Owned
	Date        Date        `json:"date" db:"date"`
	Symptoms    string      `json:"symptoms" db:"symptoms"`
	EnergyLevel EnergyLevel `json:"energy_level" db:"energy_level"`
	Appetite    Appetite    `json:"appetite" db:"appetite"`
	Notes       string      `json:"notes" db:"notes"`
}

func (HealthLog) Schema() Schema {
	return Schema{Table: TableHealthLogs, Order: "date", Limit: 60, Dependent: true}
}
func (h HealthLog) SortTime() time.Time { return h.Date.Time }
func (h HealthLog) DateValue(column string) (time.Time, bool) {
	if column == "date" {
		return h.Date.Time, true
	}
	return time.Time{}, false
}
func (h *HealthLog) normalize() {
	if h.EnergyLevel == "" {
		h.EnergyLevel = EnergyNormal
	}
	if h.Appetite == "" {
		h.Appetite = AppetiteNormal
	}
}

type TherapySession struct {
	Meta
	Owned
	SessionType     SessionType `json:"session_type" db:"session_type"`
	Date            Date        `json:"date" db:"date"`
	DurationMinutes Number      `json:"duration_minutes" db:"duration_minutes"`
	TherapistName   string      `json:"therapist_name" db:"therapist_name"`
	ClinicName      string      `json:"clinic_name" db:"clinic_name"`
	Exercises       string      `json:"exercises" db:"exercises"`
	Notes           string      `json:"notes" db:"notes"`
	NextSessionDate Date        `json:"next_session_date" db:"next_session_date"`
	Cost            Number      `json:"cost" db:"cost"`
}

func (TherapySession) Schema() Schema {
	return Schema{Table: TableTherapySessions, Order: "date", Dependent: true}
}
func (t TherapySession) SortTime() time.Time { return t.Date.Time }
func (t TherapySession) DateValue(column string) (time.Time, bool) {
	switch column {
	case "date":
		return t.Date.Time, true
	case "next_session_date":
		return t.NextSessionDate.Time, true
	}
	return time.Time{}, false
}
func (t *TherapySession) normalize() {
	t.DurationMinutes = t.DurationMinutes.sanitize()
	t.Cost = t.Cost.sanitize()
}

// ReminderContact es el destinatario de los recordatorios de un perro.
// Los toggles en nil cuentan como habilitados.
type ReminderContact struct {
	Meta
	Owned
	Email                string `json:"email" db:"email"`
	Phone                string `json:"phone" db:"phone"`
	DaysBefore           int    `json:"days_before" db:"days_before"` // 0 = ventana por defecto
	MedicationReminders  *bool  `json:"medication_reminders" db:"medication_reminders"`
	VaccinationReminders *bool  `json:"vaccination_reminders" db:"vaccination_reminders"`
	VetReminders         *bool  `json:"vet_reminders" db:"vet_reminders"`
	TherapyReminders     *bool  `json:"therapy_reminders" db:"therapy_reminders"`
}

func (ReminderContact) Schema() Schema {
	return Schema{Table: TableReminderContacts, Order: "created_at", Dependent: true}
}
func (c ReminderContact) SortTime() time.Time                { return c.CreatedAt }
func (c ReminderContact) DateValue(string) (time.Time, bool) { return time.Time{}, false }
func (c *ReminderContact) normalize() {
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	if c.DaysBefore < 0 {
		c.DaysBefore = 0
	}
	for _, p := range []**bool{&c.MedicationReminders, &c.VaccinationReminders, &c.VetReminders, &c.TherapyReminders} {
		if *p == nil {
			on := true
			*p = &on
		}
	}
}

// Enabled interpreta un toggle opcional.
func Enabled(b *bool) bool { return b == nil || *b }
