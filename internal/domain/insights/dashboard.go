// Package insights arma las vistas derivadas de los registros de un perro
// (panel principal, estados de vacunas, tendencias). No persiste nada.
package insights

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"dog-health-tracker/internal/domain/duedate"
	"dog-health-tracker/internal/domain/records"
)

// Reglas de experiencia del panel.
const (
	xpBase        = 100
	xpBirthDate   = 50
	xpBreed       = 30
	xpAvatar      = 80
	xpMedication  = 20
	xpVaccination = 40
	xpVetVisit    = 60
	xpPerLevel    = 500
)

type AlertLevel string

const (
	AlertUrgent  AlertLevel = "urgent"
	AlertWarning AlertLevel = "warning"
)

type Alert struct {
	Level    AlertLevel   `json:"level"`
	Title    string       `json:"title"`
	RecordID string       `json:"record_id"`
	Due      records.Date `json:"due"`
}

type VaccinationStatus struct {
	records.Vaccination
	Status duedate.Status `json:"status"`
}

type XP struct {
	Total   int `json:"total"`
	Level   int `json:"level"`
	InLevel int `json:"in_level"`
	Needed  int `json:"needed"`
}

type WeightSummary struct {
	Latest *records.WeightLog `json:"latest"`
	// Trend es la diferencia entre los dos pesajes más recientes (0 si hay menos de dos).
	Trend float64 `json:"trend"`
}

type FoodDay struct {
	Date       records.Date      `json:"date"`
	TotalGrams float64           `json:"total_grams"`
	Entries    []records.FoodLog `json:"entries"`
}

type VisitSplit struct {
	Upcoming []records.VetVisit `json:"upcoming"`
	Past     []records.VetVisit `json:"past"`
}

type TherapySplit struct {
	Upcoming []records.TherapySession `json:"upcoming"`
	History  []records.TherapySession `json:"history"`
}

type Dashboard struct {
	Dog               records.Dog          `json:"dog"`
	Age               string               `json:"age"`
	XP                XP                   `json:"xp"`
	Alerts            []Alert              `json:"alerts"`
	ActiveMedications []records.Medication `json:"active_medications"`
	Vaccinations      []VaccinationStatus  `json:"vaccinations"`
	NextVisit         *records.VetVisit    `json:"next_visit"`
	Weight            WeightSummary        `json:"weight"`
	Food              []FoodDay            `json:"food"`
	Visits            VisitSplit           `json:"visits"`
	Therapy           TherapySplit         `json:"therapy"`
}

type Service struct {
	store *records.Store
	now   func() time.Time
}

func NewService(store *records.Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Dashboard carga todas las listas del perro en paralelo y proyecta el panel.
func (s *Service) Dashboard(ctx context.Context, dogID string) (Dashboard, error) {
	dog, err := s.store.Dogs().Get(ctx, dogID)
	if err != nil {
		return Dashboard{}, err
	}

	var (
		meds    []records.Medication
		vaxs    []records.Vaccination
		visits  []records.VetVisit
		weights []records.WeightLog
		food    []records.FoodLog
		therapy []records.TherapySession
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(load(gctx, s.store.Medications(), dogID, &meds))
	g.Go(load(gctx, s.store.Vaccinations(), dogID, &vaxs))
	g.Go(load(gctx, s.store.VetVisits(), dogID, &visits))
	g.Go(load(gctx, s.store.WeightLogs(), dogID, &weights))
	g.Go(load(gctx, s.store.FoodLogs(), dogID, &food))
	g.Go(load(gctx, s.store.TherapySessions(), dogID, &therapy))
	if err := g.Wait(); err != nil {
		return Dashboard{}, fmt.Errorf("dashboard %s: %w", dogID, err)
	}

	now := s.now()
	return Dashboard{
		Dog:               dog,
		Age:               Age(dog.DateOfBirth, now),
		XP:                Experience(dog, len(meds), len(vaxs), len(visits)),
		Alerts:            Alerts(vaxs, now),
		ActiveMedications: ActiveMedications(meds),
		Vaccinations:      VaccinationStatuses(vaxs, now),
		NextVisit:         NextVisit(visits, now),
		Weight:            Weight(weights),
		Food:              FoodByDay(food),
		Visits:            SplitVisits(visits, now),
		Therapy:           SplitTherapy(therapy, now),
	}, nil
}

func load[T any, P records.EntityPtr[T]](ctx context.Context, c records.Collection[T, P], dogID string, dst *[]T) func() error {
	return func() error {
		rows, err := c.List(ctx, dogID)
		*dst = rows
		return err
	}
}

// Experience: 100 base, +50 fecha de nacimiento, +30 raza, +80 foto,
// +20 por medicación, +40 por vacuna, +60 por visita. 500 por nivel.
func Experience(dog records.Dog, meds, vaxs, visits int) XP {
	xp := xpBase
	if !dog.DateOfBirth.IsZero() {
		xp += xpBirthDate
	}
	if dog.Breed != "" {
		xp += xpBreed
	}
	if dog.AvatarURL != "" {
		xp += xpAvatar
	}
	xp += meds*xpMedication + vaxs*xpVaccination + visits*xpVetVisit

	level := xp/xpPerLevel + 1
	return XP{
		Total:   xp,
		Level:   level,
		InLevel: xp - (level-1)*xpPerLevel,
		Needed:  xpPerLevel,
	}
}

// Age devuelve "N yr(s)" desde el año cumplido, si no "N mo(s)". Vacío sin fecha.
func Age(dob records.Date, now time.Time) string {
	if dob.IsZero() {
		return ""
	}
	today := records.DateOf(now)
	months := (today.Year()-dob.Year())*12 + int(today.Month()-dob.Month())
	if today.Day() < dob.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}
	if years := months / 12; years >= 1 {
		return plural(years, "yr")
	}
	return plural(months, "mo")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func VaccinationStatuses(vaxs []records.Vaccination, now time.Time) []VaccinationStatus {
	out := make([]VaccinationStatus, 0, len(vaxs))
	for _, v := range vaxs {
		out = append(out, VaccinationStatus{
			Vaccination: v,
			Status:      duedate.Classify(v.NextDueDate.Time, now, duedate.UIWindow),
		})
	}
	return out
}

// Alerts: vencidas primero (urgent), después las que vencen en 30 días (warning).
func Alerts(vaxs []records.Vaccination, now time.Time) []Alert {
	out := []Alert{}
	for _, v := range vaxs {
		if !v.NextDueDate.IsZero() && v.NextDueDate.Before(now) {
			out = append(out, Alert{Level: AlertUrgent, Title: v.Name + " shield expired!", RecordID: v.ID, Due: v.NextDueDate})
		}
	}
	for _, v := range vaxs {
		if duedate.Upcoming(v.NextDueDate.Time, now, duedate.UIWindow) {
			out = append(out, Alert{Level: AlertWarning, Title: v.Name + " recharge needed", RecordID: v.ID, Due: v.NextDueDate})
		}
	}
	return out
}

func ActiveMedications(meds []records.Medication) []records.Medication {
	out := []records.Medication{}
	for _, m := range meds {
		if m.Active() {
			out = append(out, m)
		}
	}
	return out
}

// NextVisit es la primera visita (en el orden de la lista) con un turno futuro.
func NextVisit(visits []records.VetVisit, now time.Time) *records.VetVisit {
	for i := range visits {
		if !visits[i].NextAppointment.IsZero() && visits[i].NextAppointment.After(now) {
			v := visits[i]
			return &v
		}
	}
	return nil
}

// Weight toma la lista ya ordenada por fecha desc.
func Weight(logs []records.WeightLog) WeightSummary {
	var out WeightSummary
	if len(logs) == 0 {
		return out
	}
	latest := logs[0]
	out.Latest = &latest
	if len(logs) >= 2 && logs[0].Weight.Valid && logs[1].Weight.Valid {
		out.Trend = logs[0].Weight.Float64 - logs[1].Weight.Float64
	}
	return out
}

// FoodByDay agrupa por fecha (más reciente primero) y suma los gramos del día.
// Las entradas sin cantidad suman 0.
func FoodByDay(logs []records.FoodLog) []FoodDay {
	out := []FoodDay{}
	index := map[records.Date]int{}
	for _, l := range logs {
		i, ok := index[l.Date]
		if !ok {
			i = len(out)
			index[l.Date] = i
			out = append(out, FoodDay{Date: l.Date})
		}
		out[i].Entries = append(out[i].Entries, l)
		if l.AmountGrams.Valid {
			out[i].TotalGrams += l.AmountGrams.Float64
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Date.After(out[j-1].Date.Time); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func SplitVisits(visits []records.VetVisit, now time.Time) VisitSplit {
	out := VisitSplit{Upcoming: []records.VetVisit{}, Past: []records.VetVisit{}}
	for _, v := range visits {
		if !v.NextAppointment.IsZero() && v.NextAppointment.After(now) {
			out.Upcoming = append(out.Upcoming, v)
		} else {
			out.Past = append(out.Past, v)
		}
	}
	return out
}

func SplitTherapy(sessions []records.TherapySession, now time.Time) TherapySplit {
	out := TherapySplit{Upcoming: []records.TherapySession{}, History: []records.TherapySession{}}
	for _, s := range sessions {
		if !s.NextSessionDate.IsZero() && s.NextSessionDate.After(now) {
			out.Upcoming = append(out.Upcoming, s)
		} else {
			out.History = append(out.History, s)
		}
	}
	return out
}
