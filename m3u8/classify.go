package m3u8

import "strings"

// Classify returns the kind of a validated line. A '#' line is only a tag
// when the next three bytes are "EXT", so short lines like "#EX" are comments
func Classify(line string) Kind {
	switch {
	case line == "":
		return Blank
	case strings.HasPrefix(line, "#EXT"):
		return Tag
	case line[0] == '#':
		return Comment
	default:
		return URI
	}
}
