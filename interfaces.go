package main

import (
	"dscheirer.com/ampanel/panel"
	"github.com/pkg/errors"
)

// errInputClosed is returned by readRaw when the operator asked to exit
var errInputClosed = errors.New("input closed")

type switchInput interface {
	initInputs(rt runtimeConfig) error
	// readRaw returns the current level of the four switch lines, without
	// any debouncing
	readRaw() (panel.Raw, error)
	closeInputs()
}

type led interface {
	init(settings configSettings) error
	set(pin int, on bool)
	on(pin int)
	off(pin int)
	close()
}

type statusService interface {
	launch(handler *apiHandler, addr string)
	stop()
}

func newInputs(settings configSettings) (switchInput, error) {
	switch name := settings.GetString(sInputBackend); name {
	case "rpio":
		return &rpioInputs{}, nil
	case "expander":
		return &expanderInputs{}, nil
	case "keyboard":
		return &keyInputs{}, nil
	case "none":
		return newNoInputs(), nil
	default:
		return nil, errors.Errorf("unknown input backend '%s'", name)
	}
}

func newLed(settings configSettings) (led, error) {
	switch name := settings.GetString(sOutputBackend); name {
	case "rpio":
		return &rpioLed{}, nil
	case "expander":
		return &expanderLed{}, nil
	case "log":
		return &logLed{}, nil
	default:
		return nil, errors.Errorf("unknown output backend '%s'", name)
	}
}
