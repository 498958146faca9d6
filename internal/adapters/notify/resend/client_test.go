package resend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dog-health-tracker/internal/platform/httpclient"
	"dog-health-tracker/internal/ports/notify"
)

func TestSend_PostsEmail(t *testing.T) {
	var got sendEmailRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id":"email-1"}`))
	}))
	defer srv.Close()

	c, err := New("re_test", "Dog Tracker <reminders@yourdomain.com>", srv.URL, time.Second)
	require.NoError(t, err)

	err = c.Send(context.Background(), notify.Message{To: "me@example.com", Subject: "🐾 Rex Reminders", HTML: "<ul><li>x</li></ul>"})
	require.NoError(t, err)

	assert.Equal(t, []string{"me@example.com"}, got.To)
	assert.Equal(t, "Dog Tracker <reminders@yourdomain.com>", got.From)
	assert.Equal(t, "🐾 Rex Reminders", got.Subject)
}

func TestSend_ProviderErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid from"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c, err := New("re_test", "x", srv.URL, time.Second)
	require.NoError(t, err)

	err = c.Send(context.Background(), notify.Message{To: "me@example.com"})
	var he *httpclient.HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusUnprocessableEntity, he.StatusCode)
}

func TestSend_NotConfigured(t *testing.T) {
	c, err := New("", "x", "", time.Second)
	require.NoError(t, err)
	assert.ErrorIs(t, c.Send(context.Background(), notify.Message{To: "a@b.c"}), ErrNotConfigured)
}
