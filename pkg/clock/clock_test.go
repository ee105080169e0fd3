package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("fires timers in deadline order", func(t *testing.T) {
		clk := NewFake(start)
		var order []string

		clk.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
		clk.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
		clk.AfterFunc(20*time.Millisecond, func() { order = append(order, "b") })

		clk.Advance(25 * time.Millisecond)
		assert.Equal(t, []string{"a", "b"}, order)
		assert.Equal(t, start.Add(25*time.Millisecond), clk.Now())

		clk.Advance(5 * time.Millisecond)
		assert.Equal(t, []string{"a", "b", "c"}, order)
		assert.Equal(t, 0, clk.Pending())
	})

	t.Run("stopped timers never fire", func(t *testing.T) {
		clk := NewFake(start)
		fired := false

		timer := clk.AfterFunc(time.Second, func() { fired = true })
		assert.True(t, timer.Stop())
		assert.False(t, timer.Stop())

		clk.Advance(2 * time.Second)
		assert.False(t, fired)
	})

	t.Run("timers scheduled by callbacks fire within the same advance", func(t *testing.T) {
		clk := NewFake(start)
		var at []time.Time

		clk.AfterFunc(10*time.Millisecond, func() {
			at = append(at, clk.Now())
			clk.AfterFunc(10*time.Millisecond, func() {
				at = append(at, clk.Now())
			})
		})

		clk.Advance(25 * time.Millisecond)
		assert.Equal(t, []time.Time{
			start.Add(10 * time.Millisecond),
			start.Add(20 * time.Millisecond),
		}, at)
	})

	t.Run("zero delay fires on the next advance", func(t *testing.T) {
		clk := NewFake(start)
		fired := false

		clk.AfterFunc(0, func() { fired = true })
		assert.False(t, fired)

		clk.Advance(0)
		assert.True(t, fired)
	})
}
