package main

import (
	"math/rand"
	"testing"

	"gotest.tools/assert"

	"dscheirer.com/ampanel/panel"
)

func lineMap(lines []lineState) map[string]bool {
	m := make(map[string]bool)
	for _, l := range lines {
		m[l.Name] = l.On
	}
	return m
}

func TestIndicatorsBoot(t *testing.T) {
	s := defaultSettings()
	lines := indicators(panel.Selection{}, s)
	assert.Equal(t, len(lines), len(outputPinNames))
	for i, l := range lines {
		assert.Equal(t, l.Name, outputPinNames[i])
		assert.Equal(t, l.Pin, s.GetInt(l.Name))
		// only the active-low mute relay sits high
		assert.Equal(t, l.On, l.Name == sPinMute, l.Name)
	}

	s.set(sMuteActiveLow, false)
	assert.Equal(t, lineMap(indicators(panel.Selection{}, s))[sPinMute], false)
}

func TestIndicatorsMonitor(t *testing.T) {
	s := defaultSettings()
	sel := panel.Selection{Amp: panel.AV, Recording: true, Recorder: panel.AV, Monitor: true, Muted: true}
	m := lineMap(indicators(sel, s))

	assert.Equal(t, m[sPinLEDTape], true)
	assert.Equal(t, m[sPinLEDAV], false)
	assert.Equal(t, m[sPinLEDRec], true)
	assert.Equal(t, m[sPinRecAV], true)
	assert.Equal(t, m[sPinMute], false)
}

func TestIndicatorsOneHot(t *testing.T) {
	s := defaultSettings()
	r := rand.New(rand.NewSource(7))
	all := []panel.Switch{panel.Disc, panel.Video, panel.CD, panel.AV, panel.Tuner, panel.Tape, panel.Record}

	var sel panel.Selection
	for i := 0; i < 5000; i++ {
		sel.Apply(all[r.Intn(len(all))])
		m := lineMap(indicators(sel, s))

		sources, recorders := 0, 0
		for _, name := range sourceLEDPins {
			if m[name] {
				sources++
			}
		}
		for _, name := range recorderLEDPins {
			if m[name] {
				recorders++
			}
		}
		assert.Assert(t, sources <= 1)
		assert.Assert(t, recorders <= 1)
		// never both motor directions
		assert.Assert(t, !(m[sPinMotorUp] && m[sPinMotorDown]))
	}
}
