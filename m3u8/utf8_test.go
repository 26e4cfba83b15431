package m3u8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUTF8(t *testing.T) {
	tests := []struct {
		name   string
		input  []byte
		ok     bool
		offset int
	}{
		{"empty", []byte{}, true, 0},
		{"ascii", []byte("#EXTINF:10,"), true, 11},
		{"carriage return", []byte("segment1.ts\r"), true, 12},
		{"line feed", []byte("a\nb"), true, 3},
		{"two byte", []byte("caf\xC3\xA9"), true, 5},
		{"three byte", []byte("\xE2\x82\xAC"), true, 3},
		{"four byte", []byte("\xF0\x9F\x8E\xAC.ts"), true, 7},
		{"c1 as continuation", []byte("\xC2\x80"), true, 2},
		{"overlong accepted", []byte("\xC0\x80"), true, 2},
		{"surrogate accepted", []byte("\xED\xA0\x80"), true, 3},
		{"lone continuation", []byte("ab\x80cd"), false, 2},
		{"c1 standalone", []byte("\x9F"), false, 0},
		{"nul", []byte("a\x00"), false, 1},
		{"tab", []byte("\tsegment.ts"), false, 0},
		{"escape", []byte("x\x1B[0m"), false, 1},
		{"delete", []byte("abc\x7F"), false, 3},
		{"truncated two byte", []byte("ab\xC3"), false, 2},
		{"truncated four byte", []byte("\xF0\x9F\x8E"), false, 0},
		{"bad continuation", []byte("x\xE2\x28\xA1"), false, 1},
		{"lead followed by lead", []byte("\xC3\xC3\xA9"), false, 0},
		{"invalid lead f8", []byte("\xF8\x88\x80\x80\x80"), false, 0},
		{"invalid lead ff", []byte("\xFF"), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, ok := ValidateUTF8(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.offset, offset)
			assert.Equal(t, tt.ok, Valid(tt.input))
		})
	}
}

func TestByteClasses(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		class := byteClass[i]
		switch {
		case b == '\n' || b == '\r':
			assert.EqualValues(t, classASCII, class, "byte %#x", b)
		case b < 0x20 || b == 0x7F:
			assert.EqualValues(t, classControl, class, "byte %#x", b)
		case b >= 0x80 && b <= 0x9F:
			assert.EqualValues(t, classCont, class, "byte %#x", b)
		}
	}
}
