// Package shutdown coordinates a shutdown request raised by an interaction
// handler with the task that owns the gateway connection.
package shutdown

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.uber.org/atomic"
)

// State is the process shutdown state. It only moves forward.
type State int32

const (
	Idle State = iota
	ShuttingDown
	Terminated
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case ShuttingDown:
		return "shutting_down"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

var (
	// ErrAlreadyRequested is returned for every request after the first one.
	ErrAlreadyRequested = errors.New("shutdown already requested")
	// ErrListenerStopped is returned when nobody is left to receive the request.
	ErrListenerStopped = errors.New("shutdown listener already stopped")
	// ErrSignalLost is returned by Listen when the channel was closed before a
	// value was delivered.
	ErrSignalLost = errors.New("shutdown channel closed without a signal")
)

// Requester raises a shutdown request.
type Requester interface {
	RequestShutdown() error
}

// Teardown closes the gateway connection.
type Teardown func() error

// Compile-time interface check.
var _ Requester = (*Sender)(nil)

type signal struct {
	// Holds at most one value; the first request always fits.
	ch    chan bool
	state *atomic.Int32

	mu     sync.Mutex
	closed bool

	stopped  chan struct{}
	stopOnce sync.Once
}

func (s *signal) stop() {
	s.stopOnce.Do(func() { close(s.stopped) })
}

func (s *signal) isStopped() bool {
	select {
	case <-s.stopped:
		return true
	default:
		return false
	}
}

// Sender is the sending half of the shutdown signal. It is safe for
// concurrent use.
type Sender struct {
	sig *signal
}

// Listener is the receiving half of the shutdown signal.
type Listener struct {
	sig *signal
}

// New creates the two halves of a shutdown signal.
func New() (*Sender, *Listener) {
	sig := &signal{
		ch:      make(chan bool, 1),
		state:   atomic.NewInt32(int32(Idle)),
		stopped: make(chan struct{}),
	}
	return &Sender{sig: sig}, &Listener{sig: sig}
}

// RequestShutdown moves the process from Idle to ShuttingDown and notifies the
// listener. It never blocks. Only the first call can succeed; later calls
// return ErrAlreadyRequested, or ErrListenerStopped once the listener is gone.
func (s *Sender) RequestShutdown() error {
	s.sig.mu.Lock()
	defer s.sig.mu.Unlock()

	if s.sig.closed || s.sig.isStopped() || s.State() == Terminated {
		return ErrListenerStopped
	}
	if !s.sig.state.CompareAndSwap(int32(Idle), int32(ShuttingDown)) {
		return ErrAlreadyRequested
	}
	return s.trySend(true)
}

func (s *Sender) send(stop bool) error {
	s.sig.mu.Lock()
	defer s.sig.mu.Unlock()

	if s.sig.closed || s.sig.isStopped() {
		return ErrListenerStopped
	}
	return s.trySend(stop)
}

// trySend must be called with mu held.
func (s *Sender) trySend(stop bool) error {
	select {
	case s.sig.ch <- stop:
		return nil
	default:
		return ErrAlreadyRequested
	}
}

// Close releases the sending half. Requests made afterwards return
// ErrListenerStopped. A listener still waiting on an empty channel returns
// ErrSignalLost.
func (s *Sender) Close() {
	s.sig.mu.Lock()
	defer s.sig.mu.Unlock()

	if s.sig.closed {
		return
	}
	s.sig.closed = true
	close(s.sig.ch)
}

// State returns the current shutdown state.
func (s *Sender) State() State {
	return State(s.sig.state.Load())
}

// Listen blocks until a stop signal arrives, then runs teardown exactly once
// and returns. A false value is reserved for a future soft signal and is
// ignored. Listen returns ctx.Err() if ctx ends first.
func (l *Listener) Listen(ctx context.Context, teardown Teardown) error {
	defer l.sig.stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case stop, ok := <-l.sig.ch:
			if !ok {
				return ErrSignalLost
			}
			if !stop {
				slog.Debug("ignored non-stop shutdown signal")
				continue
			}

			slog.Info("received shutdown signal, closing gateway connection")
			err := teardown()
			l.sig.state.Store(int32(Terminated))
			if err != nil {
				return fmt.Errorf("failed to close gateway connection: %w", err)
			}
			slog.Info("closed gateway connection")
			return nil
		}
	}
}

// State returns the current shutdown state.
func (l *Listener) State() State {
	return State(l.sig.state.Load())
}
