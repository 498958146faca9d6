package resend

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"dog-health-tracker/internal/platform/httpclient"
	"dog-health-tracker/internal/ports/notify"
)

const DefaultBaseURL = "https://api.resend.com"

var ErrNotConfigured = errors.New("resend not configured")

// Client envía email por la API REST de Resend.
type Client struct {
	apiKey string
	from   string
	http   *httpclient.Client
}

var _ notify.Notifier = (*Client)(nil)

func New(apiKey, from, baseURL string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	hc, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	return &Client{apiKey: strings.TrimSpace(apiKey), from: from, http: hc}, nil
}

func (c *Client) IsConfigured() bool { return c != nil && c.apiKey != "" }

func (c *Client) Channel() notify.Channel { return notify.ChannelEmail }

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendEmailResponse struct {
	ID string `json:"id"`
}

func (c *Client) Send(ctx context.Context, msg notify.Message) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}
	if strings.TrimSpace(msg.To) == "" {
		return errors.New("resend: empty recipient")
	}

	var resp sendEmailResponse
	return c.http.DoJSON(ctx, http.MethodPost, "/emails", map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	}, sendEmailRequest{
		From:    c.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	}, &resp)
}
