package main

import (
	"testing"
	"time"

	"gotest.tools/assert"
)

func TestLEDControllerOnOff(t *testing.T) {
	rt, clock, comms := testRuntime(t)
	leds := rt.led.(*logLed)

	startLEDController(rt)
	clock.BlockUntil(1)

	comms.leds <- ledOn(2)
	comms.leds <- ledOff(3)
	testBlockDuration(clock, dLEDSleep, dLEDSleep)
	assert.Equal(t, leds.get(2), true)
	assert.Equal(t, leds.get(3), false)
	assert.Equal(t, leds.auditLen(), 2)

	// same state again is dropped
	comms.leds <- ledOn(2)
	testBlockDuration(clock, dLEDSleep, time.Second)
	assert.Equal(t, leds.auditLen(), 2)

	// unless forced
	comms.leds <- ledMessageForce(2, modeOn)
	testBlockDuration(clock, dLEDSleep, dLEDSleep)
	assert.Equal(t, leds.auditLen(), 3)

	comms.leds <- ledOff(2)
	testBlockDuration(clock, dLEDSleep, dLEDSleep)
	assert.Equal(t, leds.get(2), false)

	testQuit(rt, clock)
}

func TestLEDControllerBlink(t *testing.T) {
	rt, clock, comms := testRuntime(t)
	leds := rt.led.(*logLed)

	startLEDController(rt)
	clock.BlockUntil(1)

	comms.leds <- ledBlink(7)
	testBlockDuration(clock, dLEDSleep, dLEDSleep)
	assert.Equal(t, leds.get(7), true)

	// two flashes a second
	for i := 0; i < 8; i++ {
		testBlockDuration(clock, dLEDSleep, dBlinkPeriod-dLEDSleep)
		assert.Equal(t, leds.get(7), i%2 == 0, "half period %d", i)
		testBlockDuration(clock, dLEDSleep, dLEDSleep)
		assert.Equal(t, leds.get(7), i%2 != 0, "half period %d", i)
	}

	// a level stops the flashing
	comms.leds <- ledOff(7)
	testBlockDuration(clock, dLEDSleep, time.Second)
	assert.Equal(t, leds.get(7), false)

	testQuit(rt, clock)
}
