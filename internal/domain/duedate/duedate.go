// Package duedate clasifica fechas de vencimiento (vacunas, turnos, sesiones)
// respecto de "ahora".
package duedate

import "time"

type Status string

const (
	StatusNone    Status = "none"
	StatusOverdue Status = "overdue"
	StatusDueSoon Status = "due-soon"
	StatusActive  Status = "active"
)

const (
	// UIWindow es la ventana de "due soon" que ve el dueño en pantalla.
	UIWindow = 30 * 24 * time.Hour
	// ReminderWindow es la ventana por defecto del job de recordatorios.
	ReminderWindow = 3 * 24 * time.Hour
)

// Classify: due cero => none; due < now => overdue; due < now+window => due-soon; si no, active.
func Classify(due, now time.Time, window time.Duration) Status {
	switch {
	case due.IsZero():
		return StatusNone
	case due.Before(now):
		return StatusOverdue
	case due.Before(now.Add(window)):
		return StatusDueSoon
	default:
		return StatusActive
	}
}

// Upcoming es el criterio del banner de alertas: now < due < now+window.
func Upcoming(due, now time.Time, window time.Duration) bool {
	return !due.IsZero() && due.After(now) && due.Before(now.Add(window))
}

// Today es el día calendario de now en loc, a medianoche UTC
// (mismo formato que records.Date).
func Today(now time.Time, loc *time.Location) time.Time {
	if loc != nil {
		now = now.In(loc)
	}
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
