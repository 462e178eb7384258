package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSweeper struct {
	mu    sync.Mutex
	calls []time.Time
}

func (c *countingSweeper) SweepExpired(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, now)
	return 1
}

func (c *countingSweeper) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

func TestScheduler_InvalidSchedule(t *testing.T) {
	s := NewScheduler("not a schedule", &countingSweeper{}, nil)
	assert.Error(t, s.Start())
}

func TestScheduler_SweepSessions(t *testing.T) {
	sweeper := &countingSweeper{}
	s := NewScheduler("@every 1h", sweeper, nil)
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	s.sweepSessions()
	require.Equal(t, 1, sweeper.count())
	assert.Equal(t, fixed, sweeper.calls[0])
}

func TestScheduler_StartStop(t *testing.T) {
	sweeper := &countingSweeper{}
	s := NewScheduler("@every 1s", sweeper, nil)
	require.NoError(t, s.Start())

	assert.Eventually(t, func() bool { return sweeper.count() > 0 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
