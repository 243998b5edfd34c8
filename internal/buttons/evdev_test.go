package buttons

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testTVSize = 16

func inputEvent(typ, code uint16, value int32) []byte {
	rec := make([]byte, testTVSize+8)
	binary.LittleEndian.PutUint16(rec[testTVSize:], typ)
	binary.LittleEndian.PutUint16(rec[testTVSize+2:], code)
	binary.LittleEndian.PutUint32(rec[testTVSize+4:], uint32(value))
	return rec
}

func TestDecodeKeyPresses(t *testing.T) {
	var buf []byte
	buf = append(buf, inputEvent(evKey, 30, 1)...)  // A pressed
	buf = append(buf, inputEvent(evKey, 30, 0)...)  // A released
	buf = append(buf, inputEvent(0x00, 0, 0)...)    // SYN_REPORT
	buf = append(buf, inputEvent(evKey, 108, 1)...) // down pressed
	buf = append(buf, inputEvent(evKey, 62, 1)...)  // F4, not a badge button
	buf = append(buf, inputEvent(evKey, 48, 2)...)  // B autorepeat

	assert.Equal(t, []Event{ButtonA, ButtonDown}, decodeKeyPresses(buf, testTVSize))
}

func TestDecodeKeyPressesIgnoresPartialRecord(t *testing.T) {
	buf := inputEvent(evKey, 46, 1)
	buf = append(buf, inputEvent(evKey, 103, 1)[:10]...)

	assert.Equal(t, []Event{ButtonC}, decodeKeyPresses(buf, testTVSize))
}

func TestNoopButtons(t *testing.T) {
	b := NewNoopButtons()
	assert.NoError(t, b.Start(context.Background()))
	assert.NoError(t, b.Stop())
	_, open := <-b.Events()
	assert.False(t, open)
}
