package main

import (
	"github.com/stianeikeland/go-rpio"
)

func init() {
	features = append(features, "rpio-leds")
}

type rpioLed struct {
	logger flogger
}

func (rpi *rpioLed) init(settings configSettings) error {
	rpi.logger = &ThreadLogger{name: "LEDs"}
	if err := openRpio(); err != nil {
		return err
	}
	claimOutputs(settings, func(pin int) outputLine { return rpio.Pin(pin) })
	return nil
}

// outputLine is the part of a GPIO pin the boot sequence needs
type outputLine interface {
	Output()
	Low()
}

// claimOutputs turns every output line around and drives it low before
// anything else runs, VOL+ and VOL- included
func claimOutputs(settings configSettings, line func(pin int) outputLine) {
	for _, name := range outputPinNames {
		l := line(settings.GetInt(name))
		l.Output()
		l.Low()
	}
}

func (rpi *rpioLed) set(pinNum int, on bool) {
	rpi.logger.Printf("Set pin %v to %v", pinNum, on)
	pin := rpio.Pin(pinNum)
	if on {
		pin.High()
	} else {
		pin.Low()
	}
}

func (rpi *rpioLed) on(pin int) {
	rpi.set(pin, true)
}

func (rpi *rpioLed) off(pin int) {
	rpi.set(pin, false)
}

func (rpi *rpioLed) close() {
	closeRpio()
}
