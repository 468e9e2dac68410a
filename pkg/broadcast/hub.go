package broadcast

import (
	"context"
	"sync"
)

// Hub routes messages by topic. Each topic is backed by its own
// MemoryBroadcaster, created on first subscription and dropped once its last
// subscriber leaves. All methods are safe for concurrent use.
type Hub[T any] struct {
	topics     map[string]*MemoryBroadcaster[T]
	bufferSize int
	closed     bool
	done       chan struct{}
	wg         sync.WaitGroup
	mu         sync.RWMutex
}

var _ Router[int] = (*Hub[int])(nil)

// NewHub creates a hub whose subscribers buffer up to bufferSize messages.
func NewHub[T any](bufferSize int) *Hub[T] {
	return &Hub[T]{
		topics:     make(map[string]*MemoryBroadcaster[T]),
		bufferSize: bufferSize,
		done:       make(chan struct{}),
	}
}

// Subscribe registers a subscriber on topic. It is removed when ctx is
// cancelled or the subscriber is closed. A closed hub hands out an
// already-closed subscriber.
func (h *Hub[T]) Subscribe(ctx context.Context, topic string) Subscriber[T] {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		sub := newSubscriber[T](1)
		sub.shut()
		return sub
	}

	b, ok := h.topics[topic]
	if !ok {
		b = NewMemoryBroadcaster[T](h.bufferSize)
		h.topics[topic] = b
	}

	sub := &topicSubscriber[T]{
		Subscriber: b.Subscribe(context.Background()),
		release:    func() { h.prune(topic) },
	}

	if ctx.Done() != nil {
		h.wg.Add(1)
		go func() {
			defer h.wg.Done()
			select {
			case <-ctx.Done():
				_ = sub.Close()
			case <-h.done:
			}
		}()
	}

	return sub
}

// Publish sends msg to the subscribers of topic. A topic nobody listens on
// swallows the message. It returns ErrClosed once the hub is closed.
func (h *Hub[T]) Publish(ctx context.Context, topic string, msg Message[T]) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return ErrClosed
	}

	b, ok := h.topics[topic]
	if !ok {
		return nil
	}
	return b.Broadcast(ctx, msg)
}

// SubscriberCount reports the number of subscribers on topic.
func (h *Hub[T]) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if b, ok := h.topics[topic]; ok {
		return b.Len()
	}
	return 0
}

// Len reports the number of subscribers across all topics.
func (h *Hub[T]) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var n int
	for _, b := range h.topics {
		n += b.Len()
	}
	return n
}

// Closed reports whether Close has been called.
func (h *Hub[T]) Closed() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.closed
}

// Close closes every topic and its subscribers. It is safe to call Close
// multiple times.
func (h *Hub[T]) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}

	h.closed = true
	close(h.done)
	for _, b := range h.topics {
		_ = b.Close()
	}
	clear(h.topics)
	h.mu.Unlock()

	h.wg.Wait()
	return nil
}

// prune drops topic once it has no subscribers left.
func (h *Hub[T]) prune(topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if b, ok := h.topics[topic]; ok && b.Len() == 0 {
		delete(h.topics, topic)
		_ = b.Close()
	}
}

type topicSubscriber[T any] struct {
	Subscriber[T]
	release func()
	once    sync.Once
}

func (s *topicSubscriber[T]) Close() error {
	err := s.Subscriber.Close()
	s.once.Do(s.release)
	return err
}
