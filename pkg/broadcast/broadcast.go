package broadcast

import (
	"context"
	"sync"
)

// Message wraps data of type T for type-safe broadcasting.
type Message[T any] struct {
	Data T
}

// Subscriber receives messages from a Broadcaster.
// Implementations must be safe for concurrent use.
type Subscriber[T any] interface {
	// Receive returns the channel messages arrive on. The channel is closed
	// when the subscriber is closed or dropped.
	Receive(ctx context.Context) <-chan Message[T]

	// Close releases the subscription. It is idempotent.
	Close() error
}

// Broadcaster sends messages to multiple subscribers.
type Broadcaster[T any] interface {
	// Subscribe registers a subscriber that lives until ctx is cancelled or it is closed.
	Subscribe(ctx context.Context) Subscriber[T]

	// Broadcast sends msg to every active subscriber without blocking.
	Broadcast(ctx context.Context, msg Message[T]) error

	// Len reports the number of active subscribers.
	Len() int

	// Close shuts down the broadcaster and closes all subscribers.
	Close() error
}

// Router delivers messages to the subscribers of a single topic.
type Router[T any] interface {
	// Subscribe registers a subscriber on topic that lives until ctx is
	// cancelled or it is closed.
	Subscribe(ctx context.Context, topic string) Subscriber[T]

	// Publish sends msg to every subscriber of topic without blocking.
	Publish(ctx context.Context, topic string, msg Message[T]) error

	// SubscriberCount reports the number of active subscribers on topic.
	SubscriberCount(topic string) int

	// Close shuts down the router and closes all subscribers.
	Close() error
}

type subscriber[T any] struct {
	ch      chan Message[T]
	closed  bool
	mu      sync.RWMutex
	release func()
	once    sync.Once
}

func newSubscriber[T any](bufferSize int) *subscriber[T] {
	return &subscriber[T]{
		ch: make(chan Message[T], bufferSize),
	}
}

func (s *subscriber[T]) Receive(context.Context) <-chan Message[T] {
	return s.ch
}

// Close closes the channel and deregisters the subscriber from its owner.
func (s *subscriber[T]) Close() error {
	s.shut()
	if s.release != nil {
		s.once.Do(s.release)
	}
	return nil
}

// shut closes the channel without touching the owner, for callers that
// already hold the owner's lock.
func (s *subscriber[T]) shut() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
}

// send delivers msg without blocking and reports whether it was accepted.
func (s *subscriber[T]) send(msg Message[T]) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- msg:
		return true
	default:
		return false
	}
}
