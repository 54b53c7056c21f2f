package stopwatch

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

const DefaultQuantum = 10 * time.Millisecond

// Ticker is the part of *time.Ticker the stopwatch needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	ticker *time.Ticker
}

func (that *timeTicker) C() <-chan time.Time { return that.ticker.C }

func (that *timeTicker) Stop() { that.ticker.Stop() }

func NewTimeTicker(d time.Duration) Ticker {
	return &timeTicker{ticker: time.NewTicker(d)}
}

type Option func(*Stopwatch)

// WithQuantum - sets the time added on every tick.
func WithQuantum(quantum time.Duration) Option {
	return func(that *Stopwatch) {
		if quantum > 0 {
			that.quantum = quantum
		}
	}
}

// WithTicker - replaces the ticker factory, tests drive ticks by hand with it.
func WithTicker(newTicker func(time.Duration) Ticker) Option {
	return func(that *Stopwatch) {
		that.newTicker = newTicker
	}
}

// Stopwatch advances elapsed time by a fixed quantum per tick while running.
// At most one ticking goroutine exists at a time.
type Stopwatch struct {
	quantum   time.Duration
	newTicker func(time.Duration) Ticker

	elapsed atomic.Int64

	mu      sync.Mutex
	running bool
	done    chan struct{}
	exited  chan struct{}
}

func New(opts ...Option) *Stopwatch {
	stopwatch := &Stopwatch{
		quantum:   DefaultQuantum,
		newTicker: NewTimeTicker,
	}

	for _, opt := range opts {
		opt(stopwatch)
	}

	return stopwatch
}

// Start begins ticking. publish, when set, receives every new value from the ticking
// goroutine and must not call back into Stop. Starting a running stopwatch does nothing.
func (that *Stopwatch) Start(publish func(time.Duration)) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.running {
		return
	}

	that.running = true
	that.done = make(chan struct{})
	that.exited = make(chan struct{})

	ticker := that.newTicker(that.quantum)
	go that.run(ticker, that.done, that.exited, publish)
}

func (that *Stopwatch) run(ticker Ticker, done <-chan struct{}, exited chan<- struct{}, publish func(time.Duration)) {
	defer close(exited)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C():
			// a tick and a stop can be ready together, stop wins
			select {
			case <-done:
				return
			default:
			}

			elapsed := time.Duration(that.elapsed.Add(int64(that.quantum)))
			if publish != nil {
				publish(elapsed)
			}
		}
	}
}

// Stop cancels the ticker, waits for the goroutine to exit and returns the frozen value.
// It is safe to call on a stopped stopwatch.
func (that *Stopwatch) Stop() time.Duration {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.running {
		close(that.done)
		<-that.exited
		that.running = false
	}

	return that.Elapsed()
}

func (that *Stopwatch) Elapsed() time.Duration {
	return time.Duration(that.elapsed.Load())
}

func (that *Stopwatch) IsRunning() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.running
}

// Format renders a duration as mm:ss.cc.
func Format(d time.Duration) string {
	ms := d.Milliseconds()
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	centis := (ms % 1000) / 10

	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, centis)
}
