package main

import (
	"fmt"
	"sync"
)

func init() {
	features = append(features, "log-leds")
}

// logLed keeps output levels in memory and logs them, for simulation and
// tests
type logLed struct {
	mu         sync.Mutex
	leds       map[int]bool
	audit      []string
	disableLog bool
	logger     flogger
}

func (ll *logLed) init(settings configSettings) error {
	ll.mu.Lock()
	defer ll.mu.Unlock()
	ll.leds = make(map[int]bool)
	ll.audit = make([]string, 0)
	ll.logger = &ThreadLogger{name: "LEDs"}
	return nil
}

func (ll *logLed) set(pinNum int, on bool) {
	ll.mu.Lock()
	defer ll.mu.Unlock()
	ll.leds[pinNum] = on
	if !ll.disableLog {
		ll.logger.Printf("Set LED %v to %v", pinNum, on)
	}
	ll.audit = append(ll.audit, fmt.Sprintf("Set LED %v to %v", pinNum, on))
}

func (ll *logLed) on(pinNum int) {
	ll.set(pinNum, true)
}

func (ll *logLed) off(pinNum int) {
	ll.set(pinNum, false)
}

func (ll *logLed) close() {
}

func (ll *logLed) get(pinNum int) bool {
	ll.mu.Lock()
	defer ll.mu.Unlock()
	return ll.leds[pinNum]
}

func (ll *logLed) auditLen() int {
	ll.mu.Lock()
	defer ll.mu.Unlock()
	return len(ll.audit)
}
