package progressbar

import (
	"errors"
	"fmt"
	"strings"
)

const defaultWidth = 40

// Bar represents the progress bar to be displayed
type Bar struct {
	completed int
	total     int
	width     int
	label     string
}

// Set moves the bar to done out of the total and returns the rendered bar
func (b *Bar) Set(done int) (bar string, err error) {
	if done < 0 {
		return "", errors.New("this is not a valid positive integer")
	}
	if done > b.total {
		done = b.total
	}
	b.completed = done
	return b.String(), nil
}

// String renders the bar, prefixed with a carriage return so it redraws in place
func (b *Bar) String() string {
	filled := b.width
	if b.total > 0 {
		filled = b.completed * b.width / b.total
	}

	var inner string
	if filled >= b.width {
		inner = strings.Repeat("=", b.width)
	} else {
		inner = strings.Repeat("=", filled) + ">" + strings.Repeat(" ", b.width-filled-1)
	}
	return fmt.Sprintf("\r[%s] (%d / %d %s)", inner, b.completed, b.total, b.label)
}

// New creates a progressbar counting up to total items with the given label
func New(total int, label string) *Bar {
	return &Bar{total: total, width: defaultWidth, label: label}
}

// Done ends the progress bar
func (b *Bar) Done() (bar string) {
	bar, _ = b.Set(b.total)
	return bar + "\n"
}
