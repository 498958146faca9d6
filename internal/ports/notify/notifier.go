package notify

import "context"

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// Message es un digest ya armado. HTML para email, Text para SMS.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Notifier entrega un mensaje por un canal. Sin reintentos: el error vuelve al caller.
type Notifier interface {
	Channel() Channel
	Send(ctx context.Context, msg Message) error
}
