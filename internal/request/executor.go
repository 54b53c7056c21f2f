package request

import (
	"context"
	"errors"
	"sync"
)

// State is the observable outcome of the last triggered request.
type State[T any] struct {
	Data      *T
	IsLoading bool
	IsError   bool
	Err       error
}

// IsSettled reports whether the request finished, either way.
func (that State[T]) IsSettled() bool {
	return !that.IsLoading && (that.IsError || that.Data != nil)
}

// SettleFunc receives the generation returned by Trigger together with the settled state.
type SettleFunc[T any] func(generation uint64, state State[T])

// Executor runs one logical request at a time in the background and reports the
// settled state through a callback. A request superseded by Trigger or Reset is
// not cancelled; its result is dropped.
type Executor[T any] struct {
	client   *Client
	onSettle SettleFunc[T]

	mu         sync.Mutex
	state      State[T]
	generation uint64
	inFlight   sync.WaitGroup
}

func NewExecutor[T any](client *Client, onSettle SettleFunc[T]) *Executor[T] {
	return &Executor[T]{
		client:   client,
		onSettle: onSettle,
	}
}

// Trigger starts a request, clearing previous data and error, and returns its generation.
// The callback may still observe a result that a later Trigger or Reset superseded,
// callers compare generations when that matters.
func (that *Executor[T]) Trigger(ctx context.Context, conf Config) uint64 {
	that.mu.Lock()
	that.generation++
	generation := that.generation
	that.state = State[T]{IsLoading: true}
	that.mu.Unlock()

	that.inFlight.Add(1)
	go func() {
		defer that.inFlight.Done()
		that.settle(generation, that.fetch(ctx, conf))
	}()

	return generation
}

// Reset drops the current state and any result still on its way.
func (that *Executor[T]) Reset() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.generation++
	that.state = State[T]{}
}

func (that *Executor[T]) State() State[T] {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.state
}

// Wait blocks until every started request returned, including dropped ones.
func (that *Executor[T]) Wait() {
	that.inFlight.Wait()
}

func (that *Executor[T]) fetch(ctx context.Context, conf Config) State[T] {
	var data T

	err := that.client.do(ctx, conf, &data)
	switch {
	case errors.Is(err, errNoContent):
		return State[T]{}
	case err != nil:
		return State[T]{IsError: true, Err: err}
	default:
		return State[T]{Data: &data}
	}
}

func (that *Executor[T]) settle(generation uint64, state State[T]) {
	that.mu.Lock()
	if generation != that.generation {
		that.mu.Unlock()
		return
	}
	that.state = state
	that.mu.Unlock()

	if that.onSettle != nil {
		that.onSettle(generation, state)
	}
}
