package main

import (
	"sync"
	"time"

	"dscheirer.com/ampanel/panel"
	"github.com/jonboulle/clockwork"
	"github.com/nsf/termbox-go"
)

func init() {
	features = append(features, "key-inputs")
}

// keys for the simulated panel
var keyMap = map[rune]panel.Switch{
	'1': panel.Disc,
	'2': panel.Video,
	'3': panel.CD,
	'4': panel.AV,
	'5': panel.Tuner,
	'6': panel.Tape,
	'r': panel.Record,
	'R': panel.Record,
}

// keyInputs simulates the panel from the keyboard. A key press holds the
// matching button down for keyHold, long enough to clear the debounce
// window. The event goroutine only writes the raw buffer.
type keyInputs struct {
	mu      sync.Mutex
	clock   clockwork.Clock
	hold    time.Duration
	raw     panel.Raw
	pressed time.Time
	closed  bool
	done    chan struct{}
}

func (ki *keyInputs) initInputs(rt runtimeConfig) error {
	if err := termbox.Init(); err != nil {
		return err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.Flush()

	ki.clock = rt.clock
	ki.hold = rt.settings.GetDuration(sKeyHold)
	ki.raw = panel.Idle
	ki.done = make(chan struct{})

	go ki.pollKeys()
	return nil
}

func (ki *keyInputs) pollKeys() {
	defer close(ki.done)
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventKey:
			if ev.Key == termbox.KeyCtrlC || ev.Key == termbox.KeyEsc {
				ki.mu.Lock()
				ki.closed = true
				ki.mu.Unlock()
				return
			}
			if sw, ok := keyMap[ev.Ch]; ok {
				ki.mu.Lock()
				ki.raw = panel.Encode(sw)
				ki.pressed = ki.clock.Now()
				ki.mu.Unlock()
			}
		case termbox.EventInterrupt, termbox.EventError:
			return
		}
	}
}

func (ki *keyInputs) readRaw() (panel.Raw, error) {
	ki.mu.Lock()
	defer ki.mu.Unlock()

	if ki.closed {
		return panel.Idle, errInputClosed
	}
	if ki.raw != panel.Idle && ki.clock.Now().Sub(ki.pressed) >= ki.hold {
		// let go
		ki.raw = panel.Idle
	}
	return ki.raw, nil
}

func (ki *keyInputs) closeInputs() {
	select {
	case <-ki.done:
	default:
		termbox.Interrupt()
		<-ki.done
	}
	termbox.Close()
}
