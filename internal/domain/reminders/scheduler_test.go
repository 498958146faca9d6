package reminders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRunner struct{ calls int }

func (r *countingRunner) Run(ctx context.Context) (Report, error) {
	r.calls++
	return Report{}, nil
}

func TestNewScheduler_ValidatesSpec(t *testing.T) {
	_, err := NewScheduler(&countingRunner{}, "not a cron", nil, nil)
	assert.Error(t, err)

	s, err := NewScheduler(&countingRunner{}, "", time.UTC, nil)
	require.NoError(t, err)
	s.Start()
	defer s.Stop(context.Background())

	next := s.Next()
	require.False(t, next.IsZero())
	assert.Equal(t, 7, next.Hour())
	assert.Equal(t, 0, next.Minute())
}

func TestScheduler_TickRunsJob(t *testing.T) {
	r := &countingRunner{}
	s, err := NewScheduler(r, "@every 1h", nil, nil)
	require.NoError(t, err)
	s.tick()
	assert.Equal(t, 1, r.calls)
}
