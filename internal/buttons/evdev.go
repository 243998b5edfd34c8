package buttons

import "encoding/binary"

const evKey = 0x01

// Linux input-event-codes.h; the badge buttons are mapped to these keys.
var keyEvents = map[uint16]Event{
	30:  ButtonA, // KEY_A
	48:  ButtonB, // KEY_B
	46:  ButtonC, // KEY_C
	103: ButtonUp,
	108: ButtonDown,
}

// decodeKeyPresses parses buf as a sequence of input_event records
// (timeval, u16 type, u16 code, s32 value) and returns the button presses.
// Releases, repeats and trailing partial records are ignored.
func decodeKeyPresses(buf []byte, tvSize int) []Event {
	eventSize := tvSize + 2 + 2 + 4
	var events []Event
	for off := 0; off+eventSize <= len(buf); off += eventSize {
		rec := buf[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		if typ != evKey || value != 1 {
			continue
		}
		if ev, ok := keyEvents[code]; ok {
			events = append(events, ev)
		}
	}
	return events
}
