// utility functions
package main

import (
	"sync"

	"github.com/jonboulle/clockwork"
)

var wg sync.WaitGroup

// compiled-in backends, filled by init() in each backend file
var features []string

type commChannels struct {
	quit     chan struct{}
	leds     chan ledEffect
	quitOnce *sync.Once
}

// stop closes quit, safe to call from any goroutine more than once
func (c commChannels) stop() {
	c.quitOnce.Do(func() { close(c.quit) })
}

func (c commChannels) stopped() bool {
	select {
	case <-c.quit:
		return true
	default:
		return false
	}
}

type runtimeConfig struct {
	settings configSettings
	comms    commChannels
	clock    clockwork.Clock
	inputs   switchInput
	led      led
	status   statusService
	board    *statusBoard
	logger   flogger
}

func initCommChannels() commChannels {
	return commChannels{
		quit: make(chan struct{}),
		// room for a full repaint of every line without blocking the tick
		leds:     make(chan ledEffect, 64),
		quitOnce: &sync.Once{},
	}
}

func initRuntime(settings configSettings, clock clockwork.Clock) (runtimeConfig, error) {
	inputs, err := newInputs(settings)
	if err != nil {
		return runtimeConfig{}, err
	}
	led, err := newLed(settings)
	if err != nil {
		return runtimeConfig{}, err
	}

	return runtimeConfig{
		settings: settings,
		comms:    initCommChannels(),
		clock:    clock,
		inputs:   inputs,
		led:      led,
		status:   &httpStatusService{},
		board:    &statusBoard{},
		logger:   &ThreadLogger{name: "Main"},
	}, nil
}
