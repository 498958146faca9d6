package reminders

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dog-health-tracker/internal/adapters/storage/local"
	"dog-health-tracker/internal/adapters/storage/memory"
	"dog-health-tracker/internal/domain/records"
	"dog-health-tracker/internal/domain/settings"
	"dog-health-tracker/internal/ports/kv"
	"dog-health-tracker/internal/ports/notify"
)

// -------------------------
// Fakes
// -------------------------

type recordingNotifier struct {
	channel notify.Channel
	sent    []notify.Message
	err     error
}

func (n *recordingNotifier) Channel() notify.Channel { return n.channel }

func (n *recordingNotifier) Send(ctx context.Context, msg notify.Message) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, msg)
	return nil
}

type fixture struct {
	kv       kv.Store
	store    *records.Store
	settings *settings.Service
	email    *recordingNotifier
	sms      *recordingNotifier
	job      *Job
	dog      records.Dog
}

var today = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	kvs := memory.NewKV()
	store := records.NewStore(nil, local.NewTables(kvs, "dogapp_", nil))
	set := settings.NewService(kvs, "dogapp_", nil)

	f := &fixture{
		kv:       kvs,
		store:    store,
		settings: set,
		email:    &recordingNotifier{channel: notify.ChannelEmail},
		sms:      &recordingNotifier{channel: notify.ChannelSMS},
	}
	lookup := Chain{ContactLookup{Store: store}, SettingsLookup{Settings: set}}
	f.job = NewJob(store, lookup, []notify.Notifier{f.email, f.sms}, nil, Options{})
	f.job.now = func() time.Time { return today }

	dog, err := store.Dogs().Save(context.Background(), records.Dog{Name: "Rex"})
	require.NoError(t, err)
	f.dog = dog
	return f
}

func (f *fixture) vaccination(t *testing.T, name string, due records.Date) {
	t.Helper()
	_, err := f.store.Vaccinations().Save(context.Background(), records.Vaccination{
		Owned: records.Owned{DogID: f.dog.ID}, Name: name, DateGiven: records.NewDate(2025, 1, 1), NextDueDate: due,
	})
	require.NoError(t, err)
}

func day(offset int) records.Date {
	return records.NewDate(2026, 3, 10).AddDays(offset)
}

// -------------------------
// Tests
// -------------------------

func TestBuild_CollectsEveryCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.vaccination(t, "Rabies", day(2))
	f.vaccination(t, "Lepto", day(-1))
	f.vaccination(t, "DHPP", day(20))

	off := false
	_, err := f.store.Medications().Save(ctx, records.Medication{Owned: records.Owned{DogID: f.dog.ID}, Name: "Apoquel", Dosage: "16mg"})
	require.NoError(t, err)
	_, err = f.store.Medications().Save(ctx, records.Medication{Owned: records.Owned{DogID: f.dog.ID}, Name: "Stopped", IsActive: &off})
	require.NoError(t, err)

	_, err = f.store.TherapySessions().Save(ctx, records.TherapySession{
		Owned: records.Owned{DogID: f.dog.ID}, SessionType: records.SessionHydrotherapy,
		Date: day(-7), NextSessionDate: day(1), TherapistName: "Ana",
	})
	require.NoError(t, err)
	_, err = f.store.VetVisits().Save(ctx, records.VetVisit{
		Owned: records.Owned{DogID: f.dog.ID}, Date: day(-30), Reason: "Checkup", NextAppointment: day(3), VetName: "Dr. Paz",
	})
	require.NoError(t, err)

	d, err := f.job.Build(ctx, f.dog, day(0), 3)
	require.NoError(t, err)

	texts := make([]string, 0, len(d.Lines))
	for _, l := range d.Lines {
		texts = append(texts, l.Text())
	}
	assert.Equal(t, []string{
		"💉 Rabies vaccination due on 2026-03-12",
		"🚨 Lepto vaccination is OVERDUE (was due 2026-03-09)",
		"💊 Today's medications for Rex: Apoquel 16mg",
		"🏊 Hydrotherapy session tomorrow with Ana",
		"🏥 Vet appointment on 2026-03-13 with Dr. Paz",
	}, texts)

	html, err := d.HTML()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(html, "<ul><li>💉 <strong>Rabies</strong>"))
	assert.Equal(t, "🐾 Rex Reminders", d.Subject())
}

func TestBuild_MedicationToggledActiveAppears(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	medLines := func() []string {
		t.Helper()
		d, err := f.job.Build(ctx, f.dog, day(0), 3)
		require.NoError(t, err)
		var out []string
		for _, l := range d.Lines {
			if l.Category == CategoryMedication {
				out = append(out, l.Text())
			}
		}
		return out
	}

	off, on := false, true
	paused, err := f.store.Medications().Save(ctx, records.Medication{
		Owned: records.Owned{DogID: f.dog.ID}, Name: "Carprofen", Dosage: "75mg", IsActive: &off,
	})
	require.NoError(t, err)
	assert.Empty(t, medLines())

	paused.IsActive = &on
	resumed, err := f.store.Medications().Save(ctx, paused)
	require.NoError(t, err)
	assert.Equal(t, paused.ID, resumed.ID)
	assert.Equal(t, []string{"💊 Today's medications for Rex: Carprofen 75mg"}, medLines())

	// Sin is_active cuenta como activa.
	_, err = f.store.Medications().Save(ctx, records.Medication{
		Owned: records.Owned{DogID: f.dog.ID}, Name: "Omega3",
	})
	require.NoError(t, err)
	lines := medLines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "Carprofen 75mg")
	assert.Contains(t, lines[0], "Omega3")

	resumed.IsActive = &off
	_, err = f.store.Medications().Save(ctx, resumed)
	require.NoError(t, err)
	assert.Equal(t, []string{"💊 Today's medications for Rex: Omega3"}, medLines())
}

func TestRun_NoLinesSendsNothing(t *testing.T) {
	f := newFixture(t)
	_, err := f.settings.Save(context.Background(), settings.Settings{Email: "me@example.com", MedicationReminders: true})
	require.NoError(t, err)
	f.vaccination(t, "DHPP", day(45))

	report, err := f.job.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Dogs)
	assert.Empty(t, report.Digests)
	assert.Empty(t, f.email.sent)
}

func TestRun_NoRecipientOnlyLogs(t *testing.T) {
	f := newFixture(t)
	f.vaccination(t, "Rabies", day(1))

	report, err := f.job.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Digests, 1)
	assert.Empty(t, report.Digests[0].Recipient)
	assert.Empty(t, f.email.sent)
	assert.Empty(t, f.sms.sent)
}

func TestRun_SettingsEmailAndToggles(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := settings.Defaults()
	s.Email = "me@example.com"
	s.VaccinationReminders = false
	_, err := f.settings.Save(ctx, s)
	require.NoError(t, err)

	f.vaccination(t, "Rabies", day(1))
	_, err = f.store.Medications().Save(ctx, records.Medication{Owned: records.Owned{DogID: f.dog.ID}, Name: "Apoquel"})
	require.NoError(t, err)

	report, err := f.job.Run(ctx)
	require.NoError(t, err)
	require.Len(t, report.Digests, 1)
	assert.Equal(t, "settings", report.Digests[0].Recipient)

	require.Len(t, f.email.sent, 1)
	msg := f.email.sent[0]
	assert.Equal(t, "me@example.com", msg.To)
	assert.Equal(t, "🐾 Rex Reminders", msg.Subject)
	assert.Contains(t, msg.HTML, "Apoquel")
	assert.NotContains(t, msg.HTML, "Rabies")
	assert.Empty(t, f.sms.sent, "settings carry no phone")
}

func TestRun_ContactWinsAndUsesItsWindow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.settings.Save(ctx, settings.Settings{Email: "settings@example.com", VaccinationReminders: true})
	require.NoError(t, err)
	_, err = f.store.ReminderContacts().Save(ctx, records.ReminderContact{
		Owned: records.Owned{DogID: f.dog.ID}, Email: "vet-mom@example.com", Phone: "+34600000000", DaysBefore: 10,
	})
	require.NoError(t, err)
	f.vaccination(t, "Rabies", day(8))

	report, err := f.job.Run(ctx)
	require.NoError(t, err)
	require.Len(t, report.Digests, 1)
	assert.Equal(t, "contact", report.Digests[0].Recipient)
	assert.ElementsMatch(t, []string{"email", "sms"}, report.Digests[0].Delivered)

	require.Len(t, f.email.sent, 1)
	assert.Equal(t, "vet-mom@example.com", f.email.sent[0].To)
	require.Len(t, f.sms.sent, 1)
	assert.Contains(t, f.sms.sent[0].Text, "Rabies vaccination due on 2026-03-18")
}

func TestRun_SettingsWindowOnlyWhenStored(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.job.window = 10
	f.vaccination(t, "Rabies", day(8))

	// Sólo el email guardado: reminderDaysBefore queda en su default y manda la ventana del job.
	require.NoError(t, f.kv.Set(ctx, "dogapp_settings", []byte(`{"email":"me@example.com"}`)))
	report, err := f.job.Run(ctx)
	require.NoError(t, err)
	require.Len(t, report.Digests, 1)
	assert.Contains(t, report.Digests[0].Lines, "💉 Rabies vaccination due on 2026-03-18")

	s := settings.Defaults()
	s.Email = "me@example.com"
	s.ReminderDaysBefore = 3
	_, err = f.settings.Save(ctx, s)
	require.NoError(t, err)
	report, err = f.job.Run(ctx)
	require.NoError(t, err)
	assert.Empty(t, report.Digests)
}

func TestRun_DeliveryFailureIsNotRetried(t *testing.T) {
	f := newFixture(t)
	f.email.err = errors.New("provider down")
	_, err := f.settings.Save(context.Background(), settings.Settings{Email: "me@example.com", VaccinationReminders: true})
	require.NoError(t, err)
	f.vaccination(t, "Rabies", day(0))

	report, err := f.job.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Digests, 1)
	assert.Equal(t, []string{"email"}, report.Digests[0].Failed)
	assert.Empty(t, f.email.sent)
}

func TestLine_EscapesUserText(t *testing.T) {
	l := vaccinationDue(records.Vaccination{Name: "<script>", NextDueDate: day(0)})
	assert.Contains(t, string(l.HTML), "&lt;script&gt;")
	assert.Equal(t, "💉 <script> vaccination due on 2026-03-10", l.Text())
}
