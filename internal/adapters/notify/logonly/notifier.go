package logonly

import (
	"context"

	"dog-health-tracker/internal/platform/logger"
	"dog-health-tracker/internal/ports/notify"
)

// Notifier sólo loguea el digest. Es el canal de email cuando no hay proveedor.
type Notifier struct {
	log logger.Logger
}

func New(log logger.Logger) *Notifier {
	if log == nil {
		log = logger.Nop()
	}
	return &Notifier{log: log}
}

func (n *Notifier) Channel() notify.Channel { return notify.ChannelEmail }

func (n *Notifier) Send(ctx context.Context, msg notify.Message) error {
	n.log.Info("reminder digest (not delivered)", map[string]any{
		"to":      msg.To,
		"subject": msg.Subject,
		"text":    msg.Text,
	})
	return nil
}
