package main

import (
	"github.com/pkg/errors"

	"dscheirer.com/ampanel/i2c"
	"dscheirer.com/ampanel/panel"
)

func init() {
	features = append(features, "expander-inputs")
}

// the switch lines sit on GPA0-3 of their own expander: code a, b, c,
// then record
const expanderSwitchMask = 0x0F

// expanderInputs reads the encoder and record lines from an MCP23017.
// Port A is all inputs with the pull-ups on.
type expanderInputs struct {
	dev *i2c.I2C
}

func (ei *expanderInputs) initInputs(rt runtimeConfig) error {
	s := rt.settings
	dev, err := i2c.Open(s.GetByte(sI2CInputAddress), s.GetInt(sI2CBus), s.GetBool(sI2CSimulated))
	if err != nil {
		return errors.Wrap(err, "switch expander")
	}

	for _, reg := range []byte{mcpIODIRA, mcpGPPUA} {
		if err := dev.WriteRegister(reg, 0xFF); err != nil {
			dev.Close()
			return errors.Wrap(err, "switch expander setup")
		}
	}
	if s.GetBool(sI2CSimulated) {
		// nobody is pressing anything yet
		if err := dev.WriteRegister(mcpGPIOA, byte(panel.Idle)); err != nil {
			dev.Close()
			return err
		}
	}
	ei.dev = dev
	return nil
}

func (ei *expanderInputs) readRaw() (panel.Raw, error) {
	v, err := ei.dev.ReadRegister(mcpGPIOA)
	if err != nil {
		return 0, errors.Wrap(err, "read switches")
	}
	return panel.Raw(v & expanderSwitchMask), nil
}

func (ei *expanderInputs) closeInputs() {
	if ei.dev != nil {
		ei.dev.Close()
	}
}
