package m3u8

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// LineSource splits a stream into physical lines on '\n'. Carriage
// returns are left in place. Lines may be of any length, the buffer
// grows as needed
type LineSource struct {
	br        *bufio.Reader
	buf       []byte
	physical  int
	keepEmpty bool
}

// NewLineSource creates a LineSource reading from r
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{br: bufio.NewReader(r)}
}

// Reset discards any state and starts reading from r
func (s *LineSource) Reset(r io.Reader) {
	if s.br == nil {
		s.br = bufio.NewReader(r)
	} else {
		s.br.Reset(r)
	}
	s.buf = s.buf[:0]
	s.physical = 0
}

// KeepEmpty makes Next return empty lines instead of skipping them
func (s *LineSource) KeepEmpty(keep bool) {
	s.keepEmpty = keep
}

// Physical returns the 1-based physical line number of the last line read
func (s *LineSource) Physical() int {
	return s.physical
}

// Next returns the next line without its terminator. Empty lines are
// skipped unless the source was told to keep them. The returned slice
// is only valid until the next call. io.EOF is returned once the
// stream is exhausted
func (s *LineSource) Next() ([]byte, error) {
	for {
		line, err := s.readLine()
		if err != nil {
			return nil, err
		}

		if s.physical == 1 && bytes.HasPrefix(line, bom) {
			return nil, ErrBOMPresent
		}

		if len(line) == 0 && !s.keepEmpty {
			continue
		}
		return line, nil
	}
}

func (s *LineSource) readLine() ([]byte, error) {
	s.buf = s.buf[:0]
	for {
		chunk, err := s.br.ReadSlice('\n')
		s.buf = append(s.buf, chunk...)

		switch err {
		case nil:
			s.physical++
			return s.buf[:len(s.buf)-1], nil
		case bufio.ErrBufferFull:
			// Line is longer than the reader's buffer, keep going
		case io.EOF:
			if len(s.buf) == 0 {
				return nil, io.EOF
			}
			s.physical++
			if s.physical == 1 && bytes.HasPrefix(s.buf, bom) {
				return nil, ErrBOMPresent
			}
			return nil, fmt.Errorf("line %d: %w", s.physical, ErrMissingNewline)
		default:
			return nil, fmt.Errorf("%w: line %d: %w", ErrRead, s.physical+1, err)
		}
	}
}
