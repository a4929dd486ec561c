package panel

import (
	"testing"

	"gotest.tools/assert"
)

// feed n identical samples, return the confirmations seen
func feed(d *Debouncer, s Switch, n int) []Switch {
	var out []Switch
	for i := 0; i < n; i++ {
		if c, ok := d.Tick(s); ok {
			out = append(out, c)
		}
	}
	return out
}

func TestDebounceBootQuiet(t *testing.T) {
	d := NewDebouncer(DefaultDebounceTicks)
	assert.Equal(t, len(feed(d, None, 100)), 0)
	assert.Assert(t, !d.Pending())
}

func TestDebounceSingleFire(t *testing.T) {
	d := NewDebouncer(DefaultDebounceTicks)

	// the change tick starts the window
	_, ok := d.Tick(CD)
	assert.Assert(t, !ok)

	for i := 1; i < DefaultDebounceTicks; i++ {
		_, ok := d.Tick(CD)
		assert.Assert(t, !ok, "fired early on tick %d", i)
	}
	s, ok := d.Tick(CD)
	assert.Assert(t, ok)
	assert.Equal(t, s, CD)

	// holding the button does not repeat
	assert.Equal(t, len(feed(d, CD, 500)), 0)
}

func TestDebounceNoBounce(t *testing.T) {
	d := NewDebouncer(DefaultDebounceTicks)

	// alternate every tick
	for i := 0; i < 1000; i++ {
		s := Video
		if i%2 == 1 {
			s = Tuner
		}
		_, ok := d.Tick(s)
		assert.Assert(t, !ok)
	}

	// runs one tick short of the window never confirm
	seq := []Switch{Disc, Video, Record, None}
	for i := 0; i < 40; i++ {
		assert.Equal(t, len(feed(d, seq[i%len(seq)], DefaultDebounceTicks)), 0)
	}
}

func TestDebounceRelease(t *testing.T) {
	d := NewDebouncer(3)
	assert.DeepEqual(t, feed(d, Tape, 10), []Switch{Tape})
	// letting go confirms None
	assert.DeepEqual(t, feed(d, None, 10), []Switch{None})
	assert.Equal(t, d.Stable(), None)
}

func TestDebounceMinimumWindow(t *testing.T) {
	d := NewDebouncer(0)
	assert.DeepEqual(t, feed(d, Record, 3), []Switch{Record})
}
