package m3u8

import "errors"

var (
	// ErrUnopenable is returned when the playlist file cannot be opened
	ErrUnopenable = errors.New("playlist cannot be opened")

	// ErrBOMPresent is returned when the first line starts with a UTF-8 byte order mark.
	// RFC 8216 4.1 - "They MUST NOT contain any Byte Order Mark (BOM)"
	ErrBOMPresent = errors.New("playlist starts with a byte order mark")

	// ErrMissingNewline is returned when the last line is not terminated by '\n'
	ErrMissingNewline = errors.New("missing newline")

	// ErrInvalidUTF8 is attached to warnings for lines that failed validation. It is never fatal
	ErrInvalidUTF8 = errors.New("invalid utf-8")

	// ErrRead wraps any error returned by the underlying reader
	ErrRead = errors.New("reading playlist")
)

// IsFatal reports whether err ends a collection pass. Warnings
// carrying ErrInvalidUTF8 are not fatal, everything else is
func IsFatal(err error) bool {
	return err != nil && !errors.Is(err, ErrInvalidUTF8)
}
