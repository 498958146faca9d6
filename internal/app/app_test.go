package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dog-health-tracker/internal/config"
	"dog-health-tracker/internal/domain/records"
	"dog-health-tracker/internal/platform/logger"
	"dog-health-tracker/internal/ports/notify"
)

func TestOpenLocalKV(t *testing.T) {
	ctx := context.Background()

	mem, err := OpenLocalKV(ctx, "memory://")
	require.NoError(t, err)
	require.NoError(t, mem.Set(ctx, "k", []byte("v")))

	path := filepath.Join(t.TempDir(), "nested", "dogapp.db")
	db, err := OpenLocalKV(ctx, "sqlite://"+path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Set(ctx, "k", []byte("v")))
	got, ok, err := db.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", string(got))

	_, err = OpenLocalKV(ctx, "sqlite://")
	assert.Error(t, err)
	_, err = OpenLocalKV(ctx, "ftp://nope")
	assert.Error(t, err)
}

func TestNotifiers(t *testing.T) {
	cfg := &config.Config{}
	ns, err := Notifiers(cfg, logger.Nop())
	require.NoError(t, err)
	require.Len(t, ns, 1)
	assert.Equal(t, notify.ChannelEmail, ns[0].Channel())

	cfg.Resend = config.ResendConfig{APIKey: "re_test", From: "Dog Tracker <r@example.com>", BaseURL: "https://api.resend.com"}
	cfg.Twilio = config.TwilioConfig{AccountSID: "AC123", AuthToken: "tok", FromNumber: "+15550100"}
	ns, err = Notifiers(cfg, logger.Nop())
	require.NoError(t, err)
	require.Len(t, ns, 2)
	assert.Equal(t, notify.ChannelSMS, ns[1].Channel())
}

func TestNewLocalMode(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	cfg := &config.Config{
		Local:    config.LocalConfig{Store: "memory://", Namespace: "dogapp_"},
		Reminder: config.ReminderConfig{WindowDays: 3, Timezone: "UTC"},
	}
	a, err := New(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.Equal(t, "local", a.Store.Backend())

	dog, err := a.Store.Dogs().Save(context.Background(), records.Dog{Name: "Rex"})
	require.NoError(t, err)
	report, err := a.Reminders.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Dogs)
	assert.NotEmpty(t, dog.ID)
}
