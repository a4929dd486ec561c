package main

import (
	"dscheirer.com/ampanel/panel"
)

// output lines, in the order they are painted at boot
var (
	sourceLEDPins   = []string{sPinLEDDisc, sPinLEDVideo, sPinLEDCD, sPinLEDAV, sPinLEDTuner, sPinLEDTape}
	recorderLEDPins = []string{sPinRecDisc, sPinRecVideo, sPinRecCD, sPinRecAV, sPinRecTuner}
	outputPinNames  = func() []string {
		names := append([]string{}, sourceLEDPins...)
		names = append(names, sPinLEDRec)
		names = append(names, recorderLEDPins...)
		return append(names, sPinMute, sPinMotorUp, sPinMotorDown)
	}()
)

// lineState is the electrical level wanted on one output pin
type lineState struct {
	Name string `json:"name"`
	Pin  int    `json:"pin"`
	On   bool   `json:"on"`
}

// indicators projects a selection onto the output lines. The volume motor
// lines are never driven: raising both at once would short the motor
// bridge.
func indicators(sel panel.Selection, settings configSettings) []lineState {
	lines := make([]lineState, 0, len(outputPinNames))
	add := func(name string, on bool) {
		lines = append(lines, lineState{Name: name, Pin: settings.GetInt(name), On: on})
	}

	feed := sel.Feed()
	for slot, name := range sourceLEDPins {
		add(name, feed.Slot() == slot)
	}
	add(sPinLEDRec, sel.Recording)
	for slot, name := range recorderLEDPins {
		add(name, sel.Recorder.Slot() == slot)
	}

	mute := sel.Muted
	if settings.GetBool(sMuteActiveLow) {
		mute = !mute
	}
	add(sPinMute, mute)

	add(sPinMotorUp, false)
	add(sPinMotorDown, false)

	return lines
}
