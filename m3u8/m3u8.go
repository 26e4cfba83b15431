package m3u8

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/turtletowerz/go-hls/logging"
)

// State is the position of a Collector in its current pass
type State int

const (
	StateStart State = iota
	StateReading
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateReading:
		return "reading"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// WarningFunc represents the function type required
// to be passed to the SetWarningFunc method
type WarningFunc func(Warning)

// Observer receives the outcome of every pass. The metrics
// package provides a Prometheus backed implementation
type Observer interface {
	ObservePass(set *LineSet, err error, elapsed time.Duration)
}

// Collector reads a playlist, validates and classifies every line and
// returns them all at once. A pass either returns every valid line or
// nothing. A Collector may be reused for several passes but must not
// be shared between goroutines
type Collector struct {
	source    *LineSource
	state     State
	warn      WarningFunc
	observer  Observer
	keepBlank bool
}

// NewCollector creates a Collector in the start state
func NewCollector() *Collector {
	return &Collector{state: StateStart}
}

// SetWarningFunc assigns a function that gets called
// for every line dropped because it is not valid UTF-8
func (c *Collector) SetWarningFunc(f WarningFunc) {
	c.warn = f
}

// SetObserver assigns an Observer that is told about every finished pass
func (c *Collector) SetObserver(o Observer) {
	c.observer = o
}

// SetKeepBlank makes empty lines show up as Blank instead of being skipped
func (c *Collector) SetKeepBlank(keep bool) {
	c.keepBlank = keep
}

// State returns the state the last pass ended in
func (c *Collector) State() State {
	return c.state
}

// Collect reads r until EOF. Lines that are not valid UTF-8 are dropped and
// reported as warnings; any other problem fails the whole pass
func (c *Collector) Collect(r io.Reader) (*LineSet, error) {
	start := time.Now()
	set := &LineSet{PassID: uuid.New()}

	c.state = StateStart
	if r == nil {
		return nil, c.finish(nil, fmt.Errorf("%w: nil reader", ErrUnopenable), start)
	}

	c.state = StateReading
	if c.source == nil {
		c.source = NewLineSource(r)
	} else {
		c.source.Reset(r)
	}
	c.source.KeepEmpty(c.keepBlank)

	err := c.read(set)
	if err != nil {
		set = nil
	}
	return set, c.finish(set, err, start)
}

// CollectFile opens the file at path and collects it
func (c *Collector) CollectFile(path string) (*LineSet, error) {
	start := time.Now()
	c.state = StateStart

	file, err := os.Open(path)
	if err != nil {
		return nil, c.finish(nil, fmt.Errorf("%w: %w", ErrUnopenable, err), start)
	}

	defer file.Close()
	set, err := c.Collect(file)
	if err != nil {
		return nil, fmt.Errorf("collecting %q: %w", path, err)
	}
	return set, nil
}

func (c *Collector) read(set *LineSet) error {
	for {
		raw, err := c.source.Next()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		if offset, ok := ValidateUTF8(raw); !ok {
			w := Warning{Line: c.source.Physical(), Offset: offset, Err: ErrInvalidUTF8}
			set.Warnings = append(set.Warnings, w)
			logging.Warn("pass %s: skipping %v", set.PassID, w)
			if c.warn != nil {
				c.warn(w)
			}
			continue
		}

		value := string(raw)
		set.lines = append(set.lines, Line{Index: len(set.lines), Kind: Classify(value), Value: value})
	}
}

func (c *Collector) finish(set *LineSet, err error, start time.Time) error {
	elapsed := time.Since(start)
	if err != nil {
		c.state = StateFailed
		logging.Debug("pass failed after %v: %v", elapsed, err)
	} else {
		c.state = StateDone
		if logging.IsDebugEnabled() {
			logging.Debug("pass %s done in %v: %d lines (%d tags, %d uris), %d warnings",
				set.PassID, elapsed, set.Len(), len(set.Filter(Tag)), len(set.Filter(URI)), len(set.Warnings))
		}
	}

	if c.observer != nil {
		c.observer.ObservePass(set, err, elapsed)
	}
	return err
}

// Collect creates a Collector and collects from reader. It is recommended that
// this method be used when a reader is present, and CollectFile be used with a path
func Collect(reader io.Reader) (*LineSet, error) {
	return NewCollector().Collect(reader)
}

// CollectFile creates a Collector and collects the file at path
func CollectFile(path string) (*LineSet, error) {
	return NewCollector().CollectFile(path)
}

// MustCollect implements Collect, but panics if an error occurs
func MustCollect(reader io.Reader) *LineSet {
	set, err := Collect(reader)
	if err != nil {
		panic(err)
	}
	return set
}

// MustCollectFile implements CollectFile, but panics if an error occurs
func MustCollectFile(path string) *LineSet {
	set, err := CollectFile(path)
	if err != nil {
		panic(err)
	}
	return set
}
