// Package panel decodes, debounces and interprets the seven front panel
// buttons of the amplifier: six input selectors and the record button.
package panel

import "fmt"

// Switch is the logical button seen on a single tick. At most one value is
// reported per tick, lower numbered sources winning when several buttons
// are held together.
type Switch int

const (
	None Switch = iota
	Disc
	Video
	CD
	AV
	Tuner
	Tape
	Record
)

// per-switch properties, indexed by Switch
type switchInfo struct {
	name       string
	slot       int  // indicator slot for sources, -1 otherwise
	recordable bool // can be routed to the tape recorder
}

var switchTable = [...]switchInfo{
	None:   {name: "none", slot: -1},
	Disc:   {name: "disc", slot: 0, recordable: true},
	Video:  {name: "video", slot: 1, recordable: true},
	CD:     {name: "cd", slot: 2, recordable: true},
	AV:     {name: "av", slot: 3, recordable: true},
	Tuner:  {name: "tuner", slot: 4, recordable: true},
	Tape:   {name: "tape", slot: 5},
	Record: {name: "record", slot: -1},
}

// Sources lists the six input selectors in priority order.
var Sources = []Switch{Disc, Video, CD, AV, Tuner, Tape}

// Recordable lists the sources that can feed the tape recorder.
var Recordable = []Switch{Disc, Video, CD, AV, Tuner}

func (s Switch) valid() bool {
	return s >= None && int(s) < len(switchTable)
}

func (s Switch) String() string {
	if !s.valid() {
		return "invalid"
	}
	return switchTable[s].name
}

// IsSource reports whether s is one of the six input selectors.
func (s Switch) IsSource() bool {
	return s.valid() && switchTable[s].slot >= 0
}

// IsRecordable reports whether s may be the recorder source.
func (s Switch) IsRecordable() bool {
	return s.valid() && switchTable[s].recordable
}

// Slot is the indicator position of a source (0 for disc through 5 for
// tape), or -1 for anything else.
func (s Switch) Slot() int {
	if !s.valid() {
		return -1
	}
	return switchTable[s].slot
}

// MarshalText lets status snapshots carry switch names.
func (s Switch) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseSwitch maps a name back to its Switch.
func ParseSwitch(name string) (Switch, bool) {
	for i, info := range switchTable {
		if info.name == name {
			return Switch(i), true
		}
	}
	return None, false
}

// UnmarshalText is the inverse of MarshalText.
func (s *Switch) UnmarshalText(text []byte) error {
	v, ok := ParseSwitch(string(text))
	if !ok {
		return fmt.Errorf("unknown switch %q", text)
	}
	*s = v
	return nil
}
