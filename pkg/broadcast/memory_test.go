package broadcast

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBroadcaster_Subscribe(t *testing.T) {
	t.Run("subscribe creates active subscriber", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)
		defer b.Close()

		sub := b.Subscribe(context.Background())
		require.NotNil(t, sub)
		require.NotNil(t, sub.Receive(context.Background()))
		assert.Equal(t, 1, b.Len())
	})

	t.Run("subscribe after close returns closed subscriber", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)
		require.NoError(t, b.Close())

		sub := b.Subscribe(context.Background())
		_, ok := <-sub.Receive(context.Background())
		assert.False(t, ok)
		assert.Zero(t, b.Len())
	})

	t.Run("context cancellation unsubscribes", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)
		defer b.Close()

		ctx, cancel := context.WithCancel(context.Background())
		sub := b.Subscribe(ctx)
		cancel()

		require.Eventually(t, func() bool { return b.Len() == 0 }, time.Second, 5*time.Millisecond)
		_, ok := <-sub.Receive(context.Background())
		assert.False(t, ok)
		assert.False(t, b.Closed())
	})

	t.Run("closing a subscriber deregisters it", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)
		defer b.Close()

		sub := b.Subscribe(context.Background())
		require.Equal(t, 1, b.Len())

		require.NoError(t, sub.Close())
		require.NoError(t, sub.Close())
		assert.Zero(t, b.Len())
	})
}

func TestMemoryBroadcaster_Broadcast(t *testing.T) {
	t.Run("delivers to every subscriber", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)
		defer b.Close()

		ctx := context.Background()
		first := b.Subscribe(ctx)
		second := b.Subscribe(ctx)

		require.NoError(t, b.Broadcast(ctx, Message[string]{Data: "hello"}))

		for _, sub := range []Subscriber[string]{first, second} {
			select {
			case msg := <-sub.Receive(ctx):
				assert.Equal(t, "hello", msg.Data)
			case <-time.After(time.Second):
				t.Fatal("message not delivered")
			}
		}
	})

	t.Run("preserves order per subscriber", func(t *testing.T) {
		b := NewMemoryBroadcaster[int](10)
		defer b.Close()

		ctx := context.Background()
		sub := b.Subscribe(ctx)
		for i := range 5 {
			require.NoError(t, b.Broadcast(ctx, Message[int]{Data: i}))
		}

		for i := range 5 {
			msg := <-sub.Receive(ctx)
			assert.Equal(t, i, msg.Data)
		}
	})

	t.Run("slow subscriber is dropped", func(t *testing.T) {
		b := NewMemoryBroadcaster[int](1)
		defer b.Close()

		ctx := context.Background()
		b.Subscribe(ctx)

		require.NoError(t, b.Broadcast(ctx, Message[int]{Data: 1}))
		require.NoError(t, b.Broadcast(ctx, Message[int]{Data: 2}))

		require.Eventually(t, func() bool { return b.Len() == 0 }, time.Second, 5*time.Millisecond)
	})

	t.Run("broadcast after close", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](1)
		require.NoError(t, b.Close())

		err := b.Broadcast(context.Background(), Message[string]{Data: "late"})
		assert.ErrorIs(t, err, ErrClosed)
	})
}

func TestMemoryBroadcaster_Close(t *testing.T) {
	t.Run("closes subscribers and is idempotent", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](10)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		sub := b.Subscribe(ctx)
		assert.False(t, b.Closed())

		done := make(chan struct{})
		go func() {
			assert.NoError(t, b.Close())
			assert.NoError(t, b.Close())
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Close blocked on a live subscription")
		}

		_, ok := <-sub.Receive(context.Background())
		assert.False(t, ok)
	})

	t.Run("concurrent subscribe and broadcast", func(t *testing.T) {
		b := NewMemoryBroadcaster[int](100)

		var wg sync.WaitGroup
		for i := range 20 {
			wg.Add(2)
			go func() {
				defer wg.Done()
				b.Subscribe(context.Background())
			}()
			go func() {
				defer wg.Done()
				_ = b.Broadcast(context.Background(), Message[int]{Data: i})
			}()
		}
		wg.Wait()

		assert.NoError(t, b.Close())
	})
}
