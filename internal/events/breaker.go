package events

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrBrokerUnavailable = errors.New("event broker unavailable")

type breakerState int

const (
	breakerClosed breakerState = iota
	breakerOpen
	breakerHalfOpen
)

func (s breakerState) String() string {
	switch s {
	case breakerOpen:
		return "open"
	case breakerHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

type BreakerConfig struct {
	MaxFailures  int
	ResetTimeout time.Duration
	// HalfOpenSuccesses is the number of trial publishes that must succeed
	// before the breaker closes again.
	HalfOpenSuccesses int
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxFailures:       5,
		ResetTimeout:      30 * time.Second,
		HalfOpenSuccesses: 3,
	}
}

// BreakerPublisher stops calling a failing broker for ResetTimeout after
// MaxFailures consecutive errors, so request handlers do not wait on
// publish timeouts while the broker is down.
type BreakerPublisher struct {
	next   Publisher
	config BreakerConfig
	now    func() time.Time

	mu          sync.Mutex
	state       breakerState
	failures    int
	successes   int
	lastFailure time.Time
}

func NewBreakerPublisher(next Publisher, config BreakerConfig) *BreakerPublisher {
	return &BreakerPublisher{
		next:   next,
		config: config,
		now:    time.Now,
	}
}

func (b *BreakerPublisher) Publish(ctx context.Context, e Event) error {
	if !b.allow() {
		return ErrBrokerUnavailable
	}

	if err := b.next.Publish(ctx, e); err != nil {
		b.recordFailure()
		return err
	}
	b.recordSuccess()
	return nil
}

func (b *BreakerPublisher) Close() error {
	return b.next.Close()
}

func (b *BreakerPublisher) State() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.String()
}

func (b *BreakerPublisher) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != breakerOpen {
		return true
	}
	if b.now().Sub(b.lastFailure) < b.config.ResetTimeout {
		return false
	}
	b.state = breakerHalfOpen
	b.successes = 0
	return true
}

func (b *BreakerPublisher) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case breakerHalfOpen:
		b.successes++
		if b.successes >= b.config.HalfOpenSuccesses {
			b.state = breakerClosed
			b.failures = 0
			b.successes = 0
		}
	case breakerClosed:
		b.failures = 0
	}
}

func (b *BreakerPublisher) recordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastFailure = b.now()

	switch b.state {
	case breakerHalfOpen:
		b.state = breakerOpen
		b.successes = 0
	case breakerClosed:
		b.failures++
		if b.failures >= b.config.MaxFailures {
			b.state = breakerOpen
		}
	}
}
