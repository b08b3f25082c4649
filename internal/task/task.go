// Package task tracks background work started from requests: its state, its
// result, and a guard that lets only one run per key be in flight.
package task

import (
	"context"
	"errors"
	"sync"
	"time"

	"bazaar-be/internal/logger"

	"go.uber.org/zap"
)

var ErrInFlight = errors.New("operation already in progress")

type State string

const (
	StatePending   State = "pending"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// Result is the outcome of one run.
type Result[T any] struct {
	State State  `json:"state"`
	Value T      `json:"value"`
	Error string `json:"error,omitempty"`
}

func Succeeded[T any](v T) Result[T] {
	return Result[T]{State: StateSucceeded, Value: v}
}

func Failed[T any](err error) Result[T] {
	return Result[T]{State: StateFailed, Error: err.Error()}
}

// Guard admits one holder per key.
type Guard struct {
	mu   sync.Mutex
	busy map[string]struct{}
}

func NewGuard() *Guard {
	return &Guard{busy: make(map[string]struct{})}
}

// Acquire claims key and returns the release func, or ErrInFlight when
// the key is already held.
func (g *Guard) Acquire(key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.busy[key]; ok {
		return nil, ErrInFlight
	}
	g.busy[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.busy, key)
			g.mu.Unlock()
		})
	}, nil
}

func (g *Guard) Busy(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.busy[key]
	return ok
}

// Do runs fn while holding key.
func Do[T any](g *Guard, key string, fn func() (T, error)) (T, error) {
	release, err := g.Acquire(key)
	if err != nil {
		var zero T
		return zero, err
	}
	defer release()
	return fn()
}

// Go runs fn in the background with a context detached from the request
// and bounded by timeout, then passes the result to done. Panics in fn are
// reported as failures.
func Go[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error), done func(Result[T])) {
	bg := context.WithoutCancel(ctx)

	go func() {
		runCtx, cancel := context.WithTimeout(bg, timeout)
		defer cancel()

		var res Result[T]
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.FromCtx(bg).Error("background task panicked", zap.Any("panic", r))
					res = Result[T]{State: StateFailed, Error: "internal error"}
				}
			}()

			v, err := fn(runCtx)
			if err != nil {
				res = Failed[T](err)
				return
			}
			res = Succeeded(v)
		}()

		done(res)
	}()
}
