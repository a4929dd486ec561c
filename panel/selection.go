package panel

import "fmt"

// Selection is the persistent front panel state. Amp and Recorder each
// hold a single switch, so at most one amplifier and one recorder source
// can ever be active. The zero value is the boot state: nothing selected,
// unmuted, not recording.
type Selection struct {
	Amp       Switch // source feeding the amplifier, or None
	Muted     bool
	Recording bool
	Recorder  Switch // source routed to the tape recorder, or None
	// Monitor is set while recording and the amplifier listens to the
	// recorder's tape output instead of the recorder source.
	Monitor bool
}

// Feed is the signal actually driving the amplifier.
func (sel Selection) Feed() Switch {
	if sel.Monitor {
		return Tape
	}
	return sel.Amp
}

// Apply handles one confirmed button press and reports whether anything
// changed. None is ignored.
func (sel *Selection) Apply(s Switch) bool {
	before := *sel

	switch {
	case s == Record:
		sel.toggleRecording()
	case s == Tape && sel.Recording:
		// in record mode the tape button flips between the recorder source
		// and the tape monitor
		sel.Monitor = !sel.Monitor
	case s.IsSource():
		sel.selectSource(s)
	}

	return *sel != before
}

func (sel *Selection) selectSource(s Switch) {
	// a re-press only mutes, the feed stays where it is
	if sel.Amp == s {
		sel.Muted = !sel.Muted
		return
	}
	sel.Amp = s

	if !s.IsRecordable() {
		return
	}
	if sel.Recording {
		sel.Recorder = s
		sel.Monitor = false
	} else {
		sel.Recorder = None
	}
}

func (sel *Selection) toggleRecording() {
	sel.Recording = !sel.Recording
	sel.Monitor = false
	if sel.Recording && sel.Amp.IsRecordable() {
		sel.Recorder = sel.Amp
	} else {
		sel.Recorder = None
	}
}

func (sel Selection) String() string {
	return fmt.Sprintf("amp=%s feed=%s muted=%v recording=%v recorder=%s",
		sel.Amp, sel.Feed(), sel.Muted, sel.Recording, sel.Recorder)
}
