package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"dog-health-tracker/internal/platform/logger"
	"dog-health-tracker/internal/ports/kv"
)

var ErrInvalidInput = errors.New("invalid input")

const key = "settings"

type Service struct {
	kv        kv.Store
	namespace string
	log       logger.Logger
}

func NewService(store kv.Store, namespace string, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{kv: store, namespace: namespace, log: log}
}

func (s *Service) key() string { return s.namespace + key }

// Get devuelve lo guardado mezclado sobre los defaults. Ausente o ilegible => defaults.
func (s *Service) Get(ctx context.Context) (Settings, error) {
	out, _, err := s.load(ctx)
	return out, err
}

// DaysBefore devuelve reminderDaysBefore sólo si está guardado. ok=false
// cuando vale el default, así el job usa su propia ventana.
func (s *Service) DaysBefore(ctx context.Context) (int, bool, error) {
	out, stored, err := s.load(ctx)
	if err != nil || !stored {
		return 0, false, err
	}
	return out.ReminderDaysBefore, true, nil
}

// load devuelve además si reminderDaysBefore estaba en el valor guardado.
func (s *Service) load(ctx context.Context) (Settings, bool, error) {
	out := Defaults()
	raw, ok, err := s.kv.Get(ctx, s.key())
	if err != nil {
		return out, false, fmt.Errorf("read settings: %w", err)
	}
	if !ok || len(raw) == 0 {
		return out, false, nil
	}
	var explicit struct {
		ReminderDaysBefore *int `json:"reminderDaysBefore"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		s.log.Warn("settings unreadable, using defaults", map[string]any{"err": err})
		return Defaults(), false, nil
	}
	_ = json.Unmarshal(raw, &explicit)
	return out, explicit.ReminderDaysBefore != nil, nil
}

func (s *Service) Save(ctx context.Context, in Settings) (Settings, error) {
	in.Email = strings.TrimSpace(in.Email)
	if in.Email != "" && !strings.Contains(in.Email, "@") {
		return Settings{}, fmt.Errorf("%w: email %q is not valid", ErrInvalidInput, in.Email)
	}
	if in.ReminderDaysBefore < 0 {
		return Settings{}, fmt.Errorf("%w: reminderDaysBefore must not be negative", ErrInvalidInput)
	}
	raw, err := json.Marshal(in)
	if err != nil {
		return Settings{}, err
	}
	if err := s.kv.Set(ctx, s.key(), raw); err != nil {
		return Settings{}, fmt.Errorf("write settings: %w", err)
	}
	return in, nil
}
