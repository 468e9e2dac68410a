package toasttest_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/toastkit/pkg/toast/toasttest"
)

func TestManualClock(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("runs callbacks in due order", func(t *testing.T) {
		t.Parallel()
		c := toasttest.NewManualClock(start)
		var got []string
		c.AfterFunc(2*time.Second, func() { got = append(got, "b") })
		c.AfterFunc(time.Second, func() { got = append(got, "a") })
		c.AfterFunc(time.Second, func() { got = append(got, "a2") })

		c.Advance(500 * time.Millisecond)
		assert.Empty(t, got)

		c.Advance(2 * time.Second)
		assert.Equal(t, []string{"a", "a2", "b"}, got)
		assert.Equal(t, start.Add(2500*time.Millisecond), c.Now())
		assert.Zero(t, c.Pending())
	})

	t.Run("chained callbacks within window", func(t *testing.T) {
		t.Parallel()
		c := toasttest.NewManualClock(start)
		var at []time.Duration
		c.AfterFunc(3*time.Second, func() {
			at = append(at, c.Now().Sub(start))
			c.AfterFunc(400*time.Millisecond, func() {
				at = append(at, c.Now().Sub(start))
			})
		})

		c.Advance(10 * time.Second)
		assert.Equal(t, []time.Duration{3 * time.Second, 3400 * time.Millisecond}, at)
	})

	t.Run("callback outside window stays pending", func(t *testing.T) {
		t.Parallel()
		c := toasttest.NewManualClock(start)
		ran := false
		c.AfterFunc(time.Second, func() { ran = true })

		c.Advance(999 * time.Millisecond)
		assert.False(t, ran)
		assert.Equal(t, 1, c.Pending())

		c.Advance(time.Millisecond)
		assert.True(t, ran)
	})
}
