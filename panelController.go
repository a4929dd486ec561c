package main

import (
	"github.com/pkg/errors"

	"dscheirer.com/ampanel/panel"
)

// panelState is everything the tick loop owns
type panelState struct {
	rt         runtimeConfig
	debounce   *panel.Debouncer
	sel        panel.Selection
	lines      map[int]bool // last level sent per pin
	faulted    bool
	readErrors int
	presses    int
}

func newPanelState(rt runtimeConfig) *panelState {
	return &panelState{
		rt:       rt,
		debounce: panel.NewDebouncer(rt.settings.GetInt(sDebounceTicks)),
		lines:    make(map[int]bool),
	}
}

func startPanel(rt runtimeConfig) {
	rt.logger = &ThreadLogger{name: "Panel"}
	wg.Add(1)
	go runPanel(rt)
}

// runPanel is the single owner of the panel state. Each tick it samples,
// debounces and applies, then sleeps one tick.
func runPanel(rt runtimeConfig) {
	defer wg.Done()
	defer func() {
		rt.logger.Println("exiting runPanel")
	}()

	comms := rt.comms
	if err := rt.inputs.initInputs(rt); err != nil {
		rt.logger.Printf("input init failed: %v", err)
		comms.stop()
		return
	}
	defer rt.inputs.closeInputs()

	ps := newPanelState(rt)
	// boot: everything off, mute relay released, motor lines low
	ps.paint(true)

	tick := rt.settings.GetDuration(sTick)
	for {
		select {
		case <-comms.quit:
			rt.logger.Println("quit from runPanel")
			return
		default:
		}

		if err := ps.step(); err != nil {
			rt.logger.Println(err.Error())
			comms.stop()
			return
		}

		rt.clock.Sleep(tick)
	}
}

// step runs one tick. Only a closed input ends the loop.
func (ps *panelState) step() error {
	raw, err := ps.rt.inputs.readRaw()
	if err != nil {
		if errors.Cause(err) == errInputClosed {
			return errors.Wrap(err, "panel input")
		}
		ps.readFailed(err)
		return nil
	}
	if ps.faulted {
		ps.recovered()
	}

	sw, ok := ps.debounce.Tick(panel.Sample(raw))
	if !ok || sw == panel.None {
		return nil
	}

	ps.presses++
	if ps.sel.Apply(sw) {
		ps.rt.logger.Printf("%s pressed: %s", sw, ps.sel)
		ps.paint(false)
	} else {
		ps.publish(indicators(ps.sel, ps.rt.settings))
	}
	return nil
}

// paint sends every line that differs from what was last sent, or all of
// them when forced
func (ps *panelState) paint(force bool) {
	lines := indicators(ps.sel, ps.rt.settings)
	for _, l := range lines {
		if last, ok := ps.lines[l.Pin]; ok && last == l.On && !force {
			continue
		}
		ps.lines[l.Pin] = l.On
		if ps.faulted && l.Name == sPinLEDRec {
			// the fault flash owns this one until reads recover
			continue
		}
		if force {
			ps.rt.comms.leds <- ledMessageForce(l.Pin, levelMode(l.On))
		} else {
			ps.rt.comms.leds <- ledLevel(l.Pin, l.On)
		}
	}
	ps.publish(lines)
}

func levelMode(on bool) int {
	if on {
		return modeOn
	}
	return modeOff
}

func (ps *panelState) readFailed(err error) {
	ps.readErrors++
	if !ps.faulted {
		ps.rt.logger.Printf("switch read failed, flashing fault: %v", err)
		ps.faulted = true
		ps.rt.comms.leds <- ledBlink(ps.rt.settings.GetInt(sPinLEDRec))
	}
	ps.publish(indicators(ps.sel, ps.rt.settings))
}

func (ps *panelState) recovered() {
	ps.rt.logger.Printf("switch reads recovered after %d errors", ps.readErrors)
	ps.faulted = false
	pin := ps.rt.settings.GetInt(sPinLEDRec)
	ps.rt.comms.leds <- ledMessageForce(pin, levelMode(ps.sel.Recording))
	ps.publish(indicators(ps.sel, ps.rt.settings))
}

func (ps *panelState) publish(lines []lineState) {
	ps.rt.board.publish(panelStatus{
		Amp:        ps.sel.Amp,
		Feed:       ps.sel.Feed(),
		Muted:      ps.sel.Muted,
		Recording:  ps.sel.Recording,
		Recorder:   ps.sel.Recorder,
		Monitor:    ps.sel.Monitor,
		Faulted:    ps.faulted,
		ReadErrors: ps.readErrors,
		Presses:    ps.presses,
		Lines:      lines,
		Updated:    ps.rt.clock.Now(),
	})
}
