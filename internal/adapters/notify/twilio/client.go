package twilio

import (
	"context"
	"errors"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"dog-health-tracker/internal/platform/logger"
	"dog-health-tracker/internal/ports/notify"
)

var ErrNotConfigured = errors.New("twilio not configured")

// messageCreator es la parte de twilioApi.ApiService que usamos.
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// Client envía el digest por SMS.
type Client struct {
	api  messageCreator
	from string
	log  logger.Logger
}

var _ notify.Notifier = (*Client)(nil)

func New(accountSID, authToken, from string, log logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	c := &Client{from: strings.TrimSpace(from), log: log}
	if strings.TrimSpace(accountSID) != "" && strings.TrimSpace(authToken) != "" {
		rest := twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		})
		c.api = rest.Api
	}
	return c
}

func (c *Client) IsConfigured() bool { return c != nil && c.api != nil && c.from != "" }

func (c *Client) Channel() notify.Channel { return notify.ChannelSMS }

// Send no usa ctx: el SDK de Twilio no lo acepta.
func (c *Client) Send(ctx context.Context, msg notify.Message) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}
	to := strings.TrimSpace(msg.To)
	if to == "" {
		return errors.New("twilio: empty recipient")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(c.from)
	params.SetBody(msg.Text)

	resp, err := c.api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp != nil && resp.Sid != nil {
		c.log.Debug("sms sent", map[string]any{"sid": *resp.Sid})
	}
	return nil
}
