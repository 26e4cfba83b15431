package m3u8

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind is the syntactic role of a playlist line
type Kind int

// Line kinds, see RFC 8216 4.1
const (
	Blank Kind = iota
	Comment
	Tag
	URI
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Comment:
		return "comment"
	case Tag:
		return "tag"
	case URI:
		return "uri"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Line is a validated and classified playlist line
type Line struct {
	Index int // ordinal among emitted lines, starting at 0
	Kind  Kind
	Value string
}

// Warning describes a line that was dropped from the result
type Warning struct {
	Line   int // physical line number, starting at 1
	Offset int // byte offset of the offending sequence inside the line
	Err    error
}

func (w Warning) Error() string {
	return fmt.Sprintf("line %d: byte %d: %v", w.Line, w.Offset, w.Err)
}

func (w Warning) Unwrap() error {
	return w.Err
}

// LineSet is the ordered result of a successful collection pass
type LineSet struct {
	PassID   uuid.UUID
	Warnings []Warning
	lines    []Line
}

// Len returns the number of emitted lines
func (s *LineSet) Len() int {
	return len(s.lines)
}

// At returns the line with index i
func (s *LineSet) At(i int) Line {
	return s.lines[i]
}

// Lines returns a copy of every line in file order
func (s *LineSet) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Filter returns the lines of the given kind in file order
func (s *LineSet) Filter(kind Kind) []Line {
	var out []Line
	for _, line := range s.lines {
		if line.Kind == kind {
			out = append(out, line)
		}
	}
	return out
}

// HasWarnings reports whether any line was dropped
func (s *LineSet) HasWarnings() bool {
	return len(s.Warnings) > 0
}
