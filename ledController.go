package main

import (
	"time"
)

const (
	modeOff = iota
	modeOn
	modeBlink // 2Hz fault flash
	modeUnset // undetermined state
)

const (
	dLEDSleep    = 10 * time.Millisecond
	dBlinkPeriod = 250 * time.Millisecond
)

type ledEffect struct {
	pin        int
	mode       int
	force      bool      // ignore current state, just do it
	curMode    int       // rt setting, on or off
	lastUpdate time.Time // rt setting, last time we changed the state
}

func ledMessage(pin int, mode int) ledEffect {
	return ledEffect{pin: pin, mode: mode}
}

func ledMessageForce(pin int, mode int) ledEffect {
	return ledEffect{pin: pin, mode: mode, force: true}
}

func ledOn(pin int) ledEffect {
	return ledMessage(pin, modeOn)
}

func ledOff(pin int) ledEffect {
	return ledMessage(pin, modeOff)
}

func ledBlink(pin int) ledEffect {
	return ledMessage(pin, modeBlink)
}

func ledLevel(pin int, on bool) ledEffect {
	if on {
		return ledOn(pin)
	}
	return ledOff(pin)
}

func setLEDEffect(effect ledEffect) ledEffect {
	// clear the rt info
	effect.curMode = modeUnset
	effect.lastUpdate = time.Time{}
	effect.force = false // this is not part of the rt, just an indicator in the message
	return effect
}

func startLEDController(rt runtimeConfig) {
	rt.logger = &ThreadLogger{name: "LEDs"}
	wg.Add(1)
	go runLEDController(rt)
}

// runLEDController owns every output line; other goroutines ask for
// changes over comms.leds
func runLEDController(rt runtimeConfig) {
	defer wg.Done()
	defer func() {
		rt.logger.Println("exiting runLEDController")
	}()

	comms := rt.comms
	leds := make(map[int]ledEffect)

	if err := rt.led.init(rt.settings); err != nil {
		rt.logger.Printf("led init failed: %v", err)
		comms.stop()
		return
	}
	defer rt.led.close()

	for {
		// read all incoming messages at once
		keepReading := true
		for keepReading {
			select {
			case <-comms.quit:
				rt.logger.Println("got a quit signal in runLEDController")
				return
			case msg := <-comms.leds:
				if val, ok := leds[msg.pin]; ok && !msg.force && val.mode == msg.mode {
					continue
				}
				leds[msg.pin] = setLEDEffect(msg)
			default:
				keepReading = false
			}
		}

		now := rt.clock.Now()
		for i, v := range leds {
			switch {
			case v.curMode == modeUnset:
				// on and blink both start lit
				if v.mode == modeOff {
					rt.led.off(v.pin)
					v.curMode = modeOff
				} else {
					rt.led.on(v.pin)
					v.curMode = modeOn
				}
				v.lastUpdate = now
				leds[i] = v
			case v.mode == modeBlink && now.Sub(v.lastUpdate) >= dBlinkPeriod:
				if v.curMode == modeOn {
					rt.led.off(v.pin)
					v.curMode = modeOff
				} else {
					rt.led.on(v.pin)
					v.curMode = modeOn
				}
				v.lastUpdate = now
				leds[i] = v
			}
		}

		rt.clock.Sleep(dLEDSleep)
	}
}
