// Package app arma las dependencias compartidas por cmd/api y cmd/dogctl
// a partir de la configuración.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dog-health-tracker/internal/adapters/blob/storageapi"
	"dog-health-tracker/internal/adapters/notify/logonly"
	"dog-health-tracker/internal/adapters/notify/resend"
	"dog-health-tracker/internal/adapters/notify/twilio"
	"dog-health-tracker/internal/adapters/storage/local"
	"dog-health-tracker/internal/adapters/storage/memory"
	"dog-health-tracker/internal/adapters/storage/postgres"
	"dog-health-tracker/internal/adapters/storage/redis"
	"dog-health-tracker/internal/adapters/storage/sqlite"
	"dog-health-tracker/internal/config"
	"dog-health-tracker/internal/domain/records"
	"dog-health-tracker/internal/domain/reminders"
	"dog-health-tracker/internal/domain/settings"
	"dog-health-tracker/internal/media"
	"dog-health-tracker/internal/platform/logger"
	"dog-health-tracker/internal/ports/kv"
	"dog-health-tracker/internal/ports/notify"
)

const httpTimeout = 15 * time.Second

type App struct {
	Config    *config.Config
	Log       logger.Logger
	KV        kv.Store
	Remote    *postgres.Connector
	Store     *records.Store
	Settings  *settings.Service
	Images    *media.Ingestor
	Reminders *reminders.Job
}

// NewLogger arma el logger desde la config.
func NewLogger(cfg *config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
}

func New(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	store, err := OpenLocalKV(ctx, cfg.Local.Store)
	if err != nil {
		return nil, err
	}
	log.Info("local store opened", map[string]any{"store": logger.RedactDSN(cfg.Local.Store)})

	remote := postgres.NewConnector(cfg.RemoteDSN, postgres.Config{
		MaxConns: cfg.Database.MaxConns,
		Migrate:  cfg.Database.Migrate,
	}, log)

	tables := local.NewTables(store, cfg.Local.Namespace, log)
	recs := records.NewStore(remote, tables, records.WithLogger(log))
	set := settings.NewService(store, cfg.Local.Namespace, log)

	var blobs media.BlobStore
	if cfg.Storage.IsConfigured() {
		blobs = storageapi.New(cfg.Storage.URL, cfg.Storage.ServiceKey, cfg.Storage.Bucket, httpTimeout)
	}
	images := media.NewIngestor(remote, blobs, log)

	notifiers, err := Notifiers(cfg, log)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	loc, err := cfg.Reminder.Location()
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	lookup := reminders.Chain{
		reminders.ContactLookup{Store: recs},
		reminders.SettingsLookup{Settings: set},
	}
	job := reminders.NewJob(recs, lookup, notifiers, log, reminders.Options{
		WindowDays: cfg.Reminder.WindowDays,
		Location:   loc,
	})

	return &App{
		Config:    cfg,
		Log:       log,
		KV:        store,
		Remote:    remote,
		Store:     recs,
		Settings:  set,
		Images:    images,
		Reminders: job,
	}, nil
}

func (a *App) Close() error {
	a.Remote.Close()
	return a.KV.Close()
}

// OpenLocalKV elige el almacén local según el esquema:
// memory://, sqlite://<path> o redis://...
func OpenLocalKV(ctx context.Context, url string) (kv.Store, error) {
	url = strings.TrimSpace(url)
	switch {
	case url == "" || strings.HasPrefix(url, "memory://"):
		return memory.NewKV(), nil
	case strings.HasPrefix(url, "sqlite://"):
		path := strings.TrimPrefix(url, "sqlite://")
		if path == "" {
			return nil, errors.New("LOCAL_STORE: sqlite path is empty")
		}
		return sqlite.Open(ctx, path)
	case strings.HasPrefix(url, "redis://"), strings.HasPrefix(url, "rediss://"):
		return redis.Open(ctx, url)
	}
	return nil, fmt.Errorf("LOCAL_STORE: unsupported scheme in %q", url)
}

// Notifiers: email por Resend (o sólo log si no hay API key) y SMS por
// Twilio si está configurado.
func Notifiers(cfg *config.Config, log logger.Logger) ([]notify.Notifier, error) {
	var out []notify.Notifier
	if cfg.Resend.IsConfigured() {
		c, err := resend.New(cfg.Resend.APIKey, cfg.Resend.From, cfg.Resend.BaseURL, httpTimeout)
		if err != nil {
			return nil, fmt.Errorf("resend: %w", err)
		}
		out = append(out, c)
	} else {
		log.Warn("RESEND_API_KEY not set, reminder emails will only be logged", nil)
		out = append(out, logonly.New(log))
	}
	if cfg.Twilio.IsConfigured() {
		out = append(out, twilio.New(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber, log))
	}
	return out, nil
}
