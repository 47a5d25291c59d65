package clock

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultInterval is the refresh cadence of a Loop.
const DefaultInterval = time.Second

// Loop publishes a fresh Snapshot once on Start and then on every tick.
type Loop struct {
	clock     clockwork.Clock
	timezones []string
	publish   func(Snapshot)
	interval  time.Duration
	logger    *slog.Logger
}

// Option configures a Loop.
type Option func(*Loop)

// WithInterval overrides DefaultInterval. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.interval = d
		}
	}
}

// WithLogger sets the logger used for tick tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoop creates a loop that snapshots timezones using clk and hands every
// snapshot to publish.
func NewLoop(clk clockwork.Clock, timezones []string, publish func(Snapshot), opts ...Option) *Loop {
	l := &Loop{
		clock:     clk,
		timezones: append([]string(nil), timezones...),
		publish:   publish,
		interval:  DefaultInterval,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start publishes one snapshot synchronously and then keeps publishing on
// every interval until ctx is cancelled or the returned Handle is stopped.
func (l *Loop) Start(ctx context.Context) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{cancel: cancel, done: make(chan struct{})}

	if ctx.Err() != nil {
		close(h.done)
		return h
	}

	l.tick()

	ticker := l.clock.NewTicker(l.interval)
	go func() {
		defer close(h.done)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				l.logger.Debug("clock loop stopped", "timezones", len(l.timezones))
				return
			case <-ticker.Chan():
				// A tick may race with cancellation; never publish after it.
				if ctx.Err() != nil {
					return
				}
				l.tick()
			}
		}
	}()

	return h
}

func (l *Loop) tick() {
	s := Take(l.clock, l.timezones)
	l.logger.Debug("clock tick", "at", s.Taken())
	l.publish(s)
}

// Handle controls a started Loop.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Stop cancels the loop and waits for it to exit. It is safe to call more
// than once. No publication happens after Stop returns.
func (h *Handle) Stop() {
	h.cancel()
	<-h.done
}

// Done is closed once the loop has exited.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}
