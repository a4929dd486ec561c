package panel

// Raw is the instantaneous level of the four switch input lines. Bits 0-2
// carry the encoded source button, bit 3 is the active-low record button.
type Raw uint8

const (
	CodeMask  Raw = 0x07
	RecordBit Raw = 0x08
	// Idle is the reading with nothing pressed: no code and record released.
	Idle Raw = 0x0F
)

// encoder output to switch, first six codes only
var codeTable = [8]Switch{Disc, Video, CD, AV, Tuner, Tape, None, None}

// Sample decodes a raw reading. A source code always wins over the record
// line. Sample has no state and may be called at any rate.
func Sample(raw Raw) Switch {
	if s := codeTable[raw&CodeMask]; s != None {
		return s
	}
	if raw&RecordBit == 0 {
		return Record
	}
	return None
}

// Encode builds the raw reading the panel hardware produces for a set of
// held buttons: the lowest numbered source is encoded, the record line is
// pulled low when Record is among them. Simulated inputs use it to stand
// in for the real encoder.
func Encode(pressed ...Switch) Raw {
	code := Raw(CodeMask)
	raw := Idle
	for _, s := range pressed {
		if s == Record {
			raw &^= RecordBit
			continue
		}
		if slot := s.Slot(); slot >= 0 && Raw(slot) < code {
			code = Raw(slot)
		}
	}
	return raw&^CodeMask | code
}
