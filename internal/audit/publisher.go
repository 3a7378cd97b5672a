// Package audit captures an append-only trail of validation activity.
//
// The publisher is synchronous by default; WithAsyncBuffer switches to a
// buffered channel drained by a background goroutine, trading durability for
// request latency. Events that would block a full buffer are dropped rather
// than stalling the request path.
package audit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store persists audit events. Implementations must be safe for concurrent use.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByFingerprint(ctx context.Context, fingerprint string) ([]Event, error)
}

// Publisher captures structured audit events. It is append-only and uses the
// storage layer for persistence so tests can swap sinks easily.
type Publisher struct {
	store Store

	inbox chan Event
	done  chan struct{}
	once  sync.Once
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithAsyncBuffer enables asynchronous emission with the given buffer size.
func WithAsyncBuffer(size int) Option {
	return func(p *Publisher) {
		if size > 0 {
			p.inbox = make(chan Event, size)
		}
	}
}

// NewPublisher constructs a publisher over the given store.
func NewPublisher(store Store, opts ...Option) *Publisher {
	p := &Publisher{store: store, done: make(chan struct{})}
	for _, opt := range opts {
		opt(p)
	}
	if p.inbox != nil {
		go p.drain()
	}
	return p
}

// Emit records an event, stamping ID and timestamp when unset. In async mode
// a full buffer drops the event; audit loss is preferable to blocking
// validation traffic.
func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if p.inbox == nil {
		return p.store.Append(ctx, event)
	}

	select {
	case p.inbox <- event:
	default:
	}
	return nil
}

// List returns the events recorded for a card fingerprint.
func (p *Publisher) List(ctx context.Context, fingerprint string) ([]Event, error) {
	return p.store.ListByFingerprint(ctx, fingerprint)
}

// Close stops the background drain, flushing any buffered events first.
// Safe to call on a synchronous publisher and safe to call twice.
func (p *Publisher) Close() {
	p.once.Do(func() {
		if p.inbox == nil {
			close(p.done)
			return
		}
		close(p.inbox)
		<-p.done
	})
}

func (p *Publisher) drain() {
	defer close(p.done)
	for event := range p.inbox {
		// Persistence errors are swallowed here; the store is the component
		// responsible for its own retry or logging strategy.
		_ = p.store.Append(context.Background(), event)
	}
}
