package duedate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		due    time.Time
		window time.Duration
		want   Status
	}{
		{"absent", time.Time{}, UIWindow, StatusNone},
		{"yesterday", now.AddDate(0, 0, -1), UIWindow, StatusOverdue},
		{"in ten days", now.AddDate(0, 0, 10), UIWindow, StatusDueSoon},
		{"in 45 days", now.AddDate(0, 0, 45), UIWindow, StatusActive},
		{"in ten days, reminder window", now.AddDate(0, 0, 10), ReminderWindow, StatusActive},
		{"in two days, reminder window", now.AddDate(0, 0, 2), ReminderWindow, StatusDueSoon},
		{"exactly at window edge", now.Add(UIWindow), UIWindow, StatusActive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.due, now, tt.window))
		})
	}
}

func TestUpcoming(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.True(t, Upcoming(now.AddDate(0, 0, 5), now, UIWindow))
	assert.False(t, Upcoming(now.AddDate(0, 0, -1), now, UIWindow))
	assert.False(t, Upcoming(now.AddDate(0, 0, 31), now, UIWindow))
	assert.False(t, Upcoming(time.Time{}, now, UIWindow))
}

func TestToday_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	now := time.Date(2026, 3, 2, 2, 0, 0, 0, time.UTC) // 1 de marzo, 21:00 en UTC-5
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Today(now, loc))
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), Today(now, nil))
}
