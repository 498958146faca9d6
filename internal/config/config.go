package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Port         string        `env:"PORT" env-default:"8080"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"30s"`

	Log      LogConfig
	Database DatabaseConfig
	Local    LocalConfig
	Storage  StorageConfig
	Resend   ResendConfig
	Twilio   TwilioConfig
	Reminder ReminderConfig
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"text"`
	App    string `env:"APP_NAME" env-default:"dog-health-tracker"`
}

type DatabaseConfig struct {
	URL      string `env:"DATABASE_URL"` // vacío => modo local
	MaxConns int32  `env:"DB_MAX_CONNS" env-default:"10"`
	Migrate  bool   `env:"DB_MIGRATE" env-default:"true"`
}

type LocalConfig struct {
	// memory://, sqlite://<path> o redis://...
	Store     string `env:"LOCAL_STORE" env-default:"sqlite://data/dogapp.db"`
	Namespace string `env:"LOCAL_NAMESPACE" env-default:"dogapp_"`
}

type StorageConfig struct {
	URL        string `env:"STORAGE_URL"`
	ServiceKey string `env:"STORAGE_SERVICE_KEY"`
	Bucket     string `env:"STORAGE_BUCKET" env-default:"dog-images"`
}

type ResendConfig struct {
	APIKey  string `env:"RESEND_API_KEY"`
	From    string `env:"RESEND_FROM" env-default:"Dog Tracker <reminders@yourdomain.com>"`
	BaseURL string `env:"RESEND_BASE_URL" env-default:"https://api.resend.com"`
}

type TwilioConfig struct {
	AccountSID string `env:"TWILIO_ACCOUNT_SID"`
	AuthToken  string `env:"TWILIO_AUTH_TOKEN"`
	FromNumber string `env:"TWILIO_FROM_NUMBER"`
}

type ReminderConfig struct {
	Cron         string `env:"REMINDER_CRON" env-default:"0 7 * * *"`
	WindowDays   int    `env:"REMINDER_WINDOW_DAYS" env-default:"3"`
	Timezone     string `env:"REMINDER_TIMEZONE" env-default:"UTC"`
	TriggerToken string `env:"REMINDER_TRIGGER_TOKEN"`
}

// Load lee un .env opcional y después el entorno.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Reminder.WindowDays < 0 {
		return fmt.Errorf("REMINDER_WINDOW_DAYS must not be negative")
	}
	if _, err := c.Reminder.Location(); err != nil {
		return fmt.Errorf("REMINDER_TIMEZONE: %w", err)
	}
	return nil
}

// Location resuelve la zona horaria del job ("" => UTC).
func (r ReminderConfig) Location() (*time.Location, error) {
	if strings.TrimSpace(r.Timezone) == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(r.Timezone)
}

// RemoteDSN relee DATABASE_URL del entorno en cada llamada; si no está
// seteada usa el valor cargado al arrancar.
func (c *Config) RemoteDSN() string {
	if v, ok := os.LookupEnv("DATABASE_URL"); ok {
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(c.Database.URL)
}

func (s StorageConfig) IsConfigured() bool {
	return strings.TrimSpace(s.URL) != "" && strings.TrimSpace(s.ServiceKey) != ""
}

func (r ResendConfig) IsConfigured() bool { return strings.TrimSpace(r.APIKey) != "" }

func (t TwilioConfig) IsConfigured() bool {
	return strings.TrimSpace(t.AccountSID) != "" && strings.TrimSpace(t.AuthToken) != "" && strings.TrimSpace(t.FromNumber) != ""
}

// Addr para http.Server.
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}
