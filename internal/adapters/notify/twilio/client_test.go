package twilio

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"dog-health-tracker/internal/platform/logger"
	"dog-health-tracker/internal/ports/notify"
)

type fakeAPI struct {
	got *twilioApi.CreateMessageParams
	err error
}

func (f *fakeAPI) CreateMessage(p *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.got = p
	if f.err != nil {
		return nil, f.err
	}
	sid := "SM123"
	return &twilioApi.ApiV2010Message{Sid: &sid}, nil
}

func TestSend_BuildsParams(t *testing.T) {
	api := &fakeAPI{}
	c := &Client{api: api, from: "+15550000000", log: logger.Nop()}

	require.NoError(t, c.Send(context.Background(), notify.Message{To: "+34600000000", Text: "Rex: Rabies due"}))
	require.NotNil(t, api.got)
	assert.Equal(t, "+34600000000", *api.got.To)
	assert.Equal(t, "+15550000000", *api.got.From)
	assert.Equal(t, "Rex: Rabies due", *api.got.Body)
}

func TestSend_ErrorAndNotConfigured(t *testing.T) {
	c := &Client{api: &fakeAPI{err: errors.New("21211 invalid To")}, from: "+1555", log: logger.Nop()}
	assert.Error(t, c.Send(context.Background(), notify.Message{To: "+1"}))

	assert.ErrorIs(t, New("", "", "+1555", nil).Send(context.Background(), notify.Message{To: "+1"}), ErrNotConfigured)
	assert.Equal(t, notify.ChannelSMS, c.Channel())
}
