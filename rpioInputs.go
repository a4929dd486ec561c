package main

import (
	"dscheirer.com/ampanel/panel"
	"github.com/stianeikeland/go-rpio"
)

func init() {
	features = append(features, "rpio-inputs")
}

// rpioInputs reads the encoder and record lines straight off the header.
// All four lines idle high, pulled up, and are grounded by the panel.
type rpioInputs struct {
	pins [4]rpio.Pin // code a, b, c, record
}

func (ri *rpioInputs) initInputs(rt runtimeConfig) error {
	if err := openRpio(); err != nil {
		return err
	}

	names := [4]string{sPinCodeA, sPinCodeB, sPinCodeC, sPinRecordSw}
	for i, name := range names {
		ri.pins[i] = rpio.Pin(rt.settings.GetInt(name))
		ri.pins[i].Input()
		ri.pins[i].PullUp()
	}
	return nil
}

func (ri *rpioInputs) readRaw() (panel.Raw, error) {
	var raw panel.Raw
	for i, pin := range ri.pins {
		if pin.Read() == rpio.High {
			raw |= 1 << uint(i)
		}
	}
	return raw, nil
}

func (ri *rpioInputs) closeInputs() {
	closeRpio()
}
