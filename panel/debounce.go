package panel

// DefaultDebounceTicks is the settle window at a 1ms tick.
const DefaultDebounceTicks = 20

// Debouncer confirms a sampled switch once it has been read unchanged for
// a full window of ticks. Any change, including bouncing between two
// codes, restarts the window.
type Debouncer struct {
	ticks     int
	stable    Switch
	countdown int
}

// NewDebouncer returns a filter with a window of ticks (at least one).
func NewDebouncer(ticks int) *Debouncer {
	if ticks < 1 {
		ticks = 1
	}
	return &Debouncer{ticks: ticks, stable: None}
}

// Tick feeds one sample. It returns the confirmed switch and true on the
// tick the window expires, once per stabilization. A confirmed None is a
// release.
func (d *Debouncer) Tick(s Switch) (Switch, bool) {
	if s != d.stable {
		d.stable = s
		d.countdown = d.ticks
		return None, false
	}
	if d.countdown == 0 {
		return None, false
	}
	d.countdown--
	if d.countdown == 0 {
		return d.stable, true
	}
	return None, false
}

// Stable is the most recent sample.
func (d *Debouncer) Stable() Switch {
	return d.stable
}

// Pending reports whether a window is running.
func (d *Debouncer) Pending() bool {
	return d.countdown > 0
}
