package reminders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dog-health-tracker/internal/domain/duedate"
	"dog-health-tracker/internal/domain/records"
	"dog-health-tracker/internal/platform/logger"
	"dog-health-tracker/internal/ports/notify"
)

const DefaultWindowDays = int(duedate.ReminderWindow / (24 * time.Hour))

type Options struct {
	// WindowDays es N en "vence en los próximos N días". 0 => 3.
	WindowDays int
	Location   *time.Location
}

// Job recorre todos los perros y arma/entrega un digest por perro.
// No guarda estado entre pasadas: si corre dos veces, manda dos veces.
type Job struct {
	store     *records.Store
	lookup    RecipientLookup
	notifiers []notify.Notifier
	log       logger.Logger

	now    func() time.Time
	loc    *time.Location
	window int
}

func NewJob(store *records.Store, lookup RecipientLookup, notifiers []notify.Notifier, log logger.Logger, opts Options) *Job {
	if log == nil {
		log = logger.Nop()
	}
	if opts.WindowDays <= 0 {
		opts.WindowDays = DefaultWindowDays
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Job{
		store:     store,
		lookup:    lookup,
		notifiers: notifiers,
		log:       log.With(map[string]any{"component": "reminders"}),
		now:       time.Now,
		loc:       opts.Location,
		window:    opts.WindowDays,
	}
}

// Result resume lo que pasó con un perro en la pasada.
type Result struct {
	DogID     string   `json:"dog_id"`
	DogName   string   `json:"dog_name"`
	Lines     []string `json:"lines"`
	Recipient string   `json:"recipient,omitempty"`
	Delivered []string `json:"delivered,omitempty"`
	Failed    []string `json:"failed,omitempty"`
}

type Report struct {
	Today   string   `json:"today"`
	Dogs    int      `json:"dogs"`
	Digests []Result `json:"digests"`
}

// Run hace una pasada completa. Un error en un perro no frena a los demás;
// se devuelven todos juntos al final.
func (j *Job) Run(ctx context.Context) (Report, error) {
	today := records.Date{Time: duedate.Today(j.now(), j.loc)}
	report := Report{Today: today.String(), Digests: []Result{}}

	dogs, err := j.store.Dogs().Query(ctx, records.Query{Limit: -1})
	if err != nil {
		return report, fmt.Errorf("list dogs: %w", err)
	}
	report.Dogs = len(dogs)

	var errs []error
	for _, dog := range dogs {
		res, err := j.runDog(ctx, dog, today)
		if err != nil {
			j.log.Error("reminder pass failed for dog", map[string]any{"dog_id": dog.ID, "err": err})
			errs = append(errs, fmt.Errorf("dog %s: %w", dog.ID, err))
			continue
		}
		if res != nil {
			report.Digests = append(report.Digests, *res)
		}
	}
	j.log.Info("reminder pass finished", map[string]any{
		"today":   report.Today,
		"dogs":    report.Dogs,
		"digests": len(report.Digests),
	})
	return report, errors.Join(errs...)
}

func (j *Job) runDog(ctx context.Context, dog records.Dog, today records.Date) (*Result, error) {
	recipient, ok, err := j.lookup.Lookup(ctx, dog)
	if err != nil {
		// Sin destinatario no se adivina: el digest igual se arma y se loguea.
		j.log.Warn("recipient lookup failed", map[string]any{"dog_id": dog.ID, "err": err})
		ok = false
	}

	window := j.window
	if ok && recipient.DaysBefore > 0 {
		window = recipient.DaysBefore
	}
	digest, err := j.Build(ctx, dog, today, window)
	if err != nil {
		return nil, err
	}
	if ok {
		digest = digest.filter(recipient.Prefs)
	}
	if len(digest.Lines) == 0 {
		return nil, nil
	}

	res := &Result{DogID: dog.ID, DogName: dog.Name, Lines: make([]string, 0, len(digest.Lines))}
	for _, l := range digest.Lines {
		res.Lines = append(res.Lines, l.Text())
	}

	if !ok {
		j.log.Info("reminders for dog (no recipient)", map[string]any{
			"dog_id": dog.ID,
			"dog":    dog.Name,
			"lines":  res.Lines,
		})
		return res, nil
	}
	res.Recipient = recipient.Source
	j.deliver(ctx, digest, recipient, res)
	return res, nil
}

// Build arma el digest de un perro para today con una ventana de window días.
func (j *Job) Build(ctx context.Context, dog records.Dog, today records.Date, window int) (Digest, error) {
	d := Digest{Dog: dog, DogID: dog.ID, Name: dog.Name}
	until := today.AddDays(window)

	dueSoon, err := j.store.Vaccinations().Query(ctx, records.Query{
		DogID: dog.ID, Field: "next_due_date", From: today, To: until, Limit: -1,
	})
	if err != nil {
		return d, err
	}
	for _, v := range dueSoon {
		d.Lines = append(d.Lines, vaccinationDue(v))
	}

	overdue, err := j.store.Vaccinations().Query(ctx, records.Query{
		DogID: dog.ID, Field: "next_due_date", Before: today, Limit: -1,
	})
	if err != nil {
		return d, err
	}
	for _, v := range overdue {
		d.Lines = append(d.Lines, vaccinationOverdue(v))
	}

	meds, err := j.store.Medications().Query(ctx, records.Query{DogID: dog.ID, ActiveOnly: true, Limit: -1})
	if err != nil {
		return d, err
	}
	if len(meds) > 0 {
		d.Lines = append(d.Lines, medicationsToday(dog, meds))
	}

	tomorrow := today.AddDays(1)
	sessions, err := j.store.TherapySessions().Query(ctx, records.Query{
		DogID: dog.ID, Field: "next_session_date", From: tomorrow, To: tomorrow, Limit: -1,
	})
	if err != nil {
		return d, err
	}
	for _, s := range sessions {
		d.Lines = append(d.Lines, therapyTomorrow(s))
	}

	visits, err := j.store.VetVisits().Query(ctx, records.Query{
		DogID: dog.ID, Field: "next_appointment", From: today, To: until, Limit: -1,
	})
	if err != nil {
		return d, err
	}
	for _, v := range visits {
		d.Lines = append(d.Lines, vetAppointment(v))
	}
	return d, nil
}

// deliver manda por cada canal que tenga dirección. Sin reintentos.
func (j *Job) deliver(ctx context.Context, d Digest, r Recipient, res *Result) {
	body, err := d.HTML()
	if err != nil {
		j.log.Error("render digest", map[string]any{"dog_id": d.DogID, "err": err})
		return
	}
	for _, n := range j.notifiers {
		to := ""
		switch n.Channel() {
		case notify.ChannelEmail:
			to = strings.TrimSpace(r.Email)
		case notify.ChannelSMS:
			to = strings.TrimSpace(r.Phone)
		}
		if to == "" {
			continue
		}
		msg := notify.Message{To: to, Subject: d.Subject(), HTML: body, Text: d.Text()}
		if err := n.Send(ctx, msg); err != nil {
			j.log.Warn("reminder delivery failed", map[string]any{
				"dog_id":  d.DogID,
				"channel": string(n.Channel()),
				"err":     err,
			})
			res.Failed = append(res.Failed, string(n.Channel()))
			continue
		}
		res.Delivered = append(res.Delivered, string(n.Channel()))
	}
}
