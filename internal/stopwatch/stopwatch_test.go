package stopwatch

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitFor = time.Second

type manualTicker struct {
	ch      chan time.Time
	stopped atomic.Bool
}

func newManualTicker() *manualTicker {
	return &manualTicker{ch: make(chan time.Time)}
}

func (that *manualTicker) C() <-chan time.Time { return that.ch }

func (that *manualTicker) Stop() { that.stopped.Store(true) }

// tick delivers one tick and reports whether a running stopwatch received it.
func (that *manualTicker) tick() bool {
	select {
	case that.ch <- time.Now():
		return true
	case <-time.After(50 * time.Millisecond):
		return false
	}
}

func newManualStopwatch(opts ...Option) (*Stopwatch, *manualTicker) {
	ticker := newManualTicker()
	opts = append(opts, WithTicker(func(time.Duration) Ticker { return ticker }))

	return New(opts...), ticker
}

func TestStopwatch_Start(t *testing.T) {
	t.Run("Each tick adds one quantum", func(t *testing.T) {
		// Given: a started stopwatch
		stopwatch, ticker := newManualStopwatch()
		stopwatch.Start(nil)
		t.Cleanup(func() { stopwatch.Stop() })

		// When: three ticks arrive
		for i := 0; i < 3; i++ {
			require.True(t, ticker.tick())
		}

		// Then: 30ms have elapsed
		require.Eventually(t, func() bool {
			return stopwatch.Elapsed() == 30*time.Millisecond
		}, waitFor, time.Millisecond)
	})

	t.Run("Publishes every new value", func(t *testing.T) {
		// Given: a stopwatch with a custom quantum and a publisher
		stopwatch, ticker := newManualStopwatch(WithQuantum(250 * time.Millisecond))

		var published atomic.Int64
		stopwatch.Start(func(elapsed time.Duration) { published.Store(int64(elapsed)) })
		t.Cleanup(func() { stopwatch.Stop() })

		// When: two ticks arrive
		require.True(t, ticker.tick())
		require.True(t, ticker.tick())

		// Then: the last published value is 500ms
		require.Eventually(t, func() bool {
			return time.Duration(published.Load()) == 500*time.Millisecond
		}, waitFor, time.Millisecond)
	})

	t.Run("Second start keeps a single ticker", func(t *testing.T) {
		// Given: a stopwatch counting ticker creations
		created := 0
		ticker := newManualTicker()
		stopwatch := New(WithTicker(func(time.Duration) Ticker {
			created++
			return ticker
		}))

		// When: it is started twice
		stopwatch.Start(nil)
		stopwatch.Start(nil)
		t.Cleanup(func() { stopwatch.Stop() })

		// Then: only one ticker exists
		assert.Equal(t, 1, created)
		assert.True(t, stopwatch.IsRunning())
	})
}

func TestStopwatch_Stop(t *testing.T) {
	t.Run("Frozen value ignores later ticks", func(t *testing.T) {
		// Given: a stopwatch that ran for two ticks
		stopwatch, ticker := newManualStopwatch()
		stopwatch.Start(nil)
		require.True(t, ticker.tick())
		require.True(t, ticker.tick())
		require.Eventually(t, func() bool {
			return stopwatch.Elapsed() == 20*time.Millisecond
		}, waitFor, time.Millisecond)

		// When: it is stopped
		frozen := stopwatch.Stop()

		// Then: the ticker is released and later ticks find nobody listening
		assert.Equal(t, 20*time.Millisecond, frozen)
		assert.True(t, ticker.stopped.Load())
		assert.False(t, ticker.tick())
		assert.Equal(t, frozen, stopwatch.Elapsed())
		assert.False(t, stopwatch.IsRunning())
	})

	t.Run("Stop on a stopwatch that never started", func(t *testing.T) {
		stopwatch := New()

		assert.Equal(t, time.Duration(0), stopwatch.Stop())
		assert.Equal(t, time.Duration(0), stopwatch.Stop())
	})

	t.Run("Real ticker stops", func(t *testing.T) {
		// Given: a stopwatch on the real clock
		stopwatch := New(WithQuantum(time.Millisecond))
		stopwatch.Start(nil)

		require.Eventually(t, func() bool {
			return stopwatch.Elapsed() > 0
		}, waitFor, time.Millisecond)

		// When: it is stopped
		frozen := stopwatch.Stop()
		time.Sleep(20 * time.Millisecond)

		// Then: the value does not move anymore
		assert.Equal(t, frozen, stopwatch.Elapsed())
	})
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "00:00.00", Format(0))
	assert.Equal(t, "00:01.50", Format(1500*time.Millisecond))
	assert.Equal(t, "02:05.07", Format(2*time.Minute+5*time.Second+70*time.Millisecond))
}
