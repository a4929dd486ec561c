package main

import (
	"dscheirer.com/ampanel/i2c"
)

func init() {
	features = append(features, "expander-leds")
}

// MCP23017 registers, IOCON.BANK = 0
const (
	mcpIODIRA = 0x00
	mcpIODIRB = 0x01
	mcpGPPUA  = 0x0C
	mcpGPIOA  = 0x12
	mcpOLATA  = 0x14
	mcpOLATB  = 0x15
)

// expanderLed drives the indicator lines through an MCP23017 port
// expander. Pin numbers 0-7 are GPA0-7, 8-15 are GPB0-7.
type expanderLed struct {
	dev    *i2c.I2C
	latch  uint16
	logger flogger
}

func (el *expanderLed) init(settings configSettings) error {
	el.logger = &ThreadLogger{name: "Expander"}

	dev, err := i2c.Open(settings.GetByte(sI2CAddress), settings.GetInt(sI2CBus), settings.GetBool(sI2CSimulated))
	if err != nil {
		return err
	}
	el.dev = dev
	el.latch = 0

	// everything out, everything low
	for _, reg := range []byte{mcpOLATA, mcpOLATB, mcpIODIRA, mcpIODIRB} {
		if err := dev.WriteRegister(reg, 0x00); err != nil {
			return err
		}
	}
	return nil
}

func (el *expanderLed) set(pinNum int, on bool) {
	if pinNum < 0 || pinNum > 15 {
		el.logger.Printf("Pin %d is not on the expander", pinNum)
		return
	}

	mask := uint16(1) << uint(pinNum)
	if on {
		el.latch |= mask
	} else {
		el.latch &^= mask
	}

	reg, val := byte(mcpOLATA), byte(el.latch)
	if pinNum > 7 {
		reg, val = mcpOLATB, byte(el.latch>>8)
	}
	if err := el.dev.WriteRegister(reg, val); err != nil {
		el.logger.Printf("Set pin %d failed: %v", pinNum, err)
	}
}

func (el *expanderLed) on(pin int) {
	el.set(pin, true)
}

func (el *expanderLed) off(pin int) {
	el.set(pin, false)
}

func (el *expanderLed) close() {
	if el.dev != nil {
		el.dev.Close()
	}
}
