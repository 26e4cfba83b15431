package m3u8

// Byte classes fed to the validator automaton, see doc.go
const (
	classASCII = iota
	classControl
	classCont
	classLead2
	classLead3
	classLead4
	classInvalid
	numClasses
)

// Automaton states. stateAccept sits on a code point boundary,
// stateNeedN waits for N more continuation bytes
const (
	stateAccept = iota
	stateNeed1
	stateNeed2
	stateNeed3
	stateReject
	numStates
)

var (
	byteClass   [256]uint8
	transitions = [numStates][numClasses]uint8{
		//              ascii        control      cont        lead2       lead3       lead4       invalid
		stateAccept: {stateAccept, stateReject, stateReject, stateNeed1, stateNeed2, stateNeed3, stateReject},
		stateNeed1:  {stateReject, stateReject, stateAccept, stateReject, stateReject, stateReject, stateReject},
		stateNeed2:  {stateReject, stateReject, stateNeed1, stateReject, stateReject, stateReject, stateReject},
		stateNeed3:  {stateReject, stateReject, stateNeed2, stateReject, stateReject, stateReject, stateReject},
		stateReject: {stateReject, stateReject, stateReject, stateReject, stateReject, stateReject, stateReject},
	}
)

func init() {
	for i := 0; i < 256; i++ {
		b := byte(i)
		switch {
		case b == '\n' || b == '\r':
			byteClass[i] = classASCII
		case b <= 0x1F || b == 0x7F:
			byteClass[i] = classControl
		case b < 0x80:
			byteClass[i] = classASCII
		case b&0xC0 == 0x80:
			byteClass[i] = classCont
		case b&0xE0 == 0xC0:
			byteClass[i] = classLead2
		case b&0xF0 == 0xE0:
			byteClass[i] = classLead3
		case b&0xF8 == 0xF0:
			byteClass[i] = classLead4
		default:
			byteClass[i] = classInvalid
		}
	}
}

// ValidateUTF8 runs b through the validator automaton. When b is
// rejected, offset is the position of the sequence that broke it.
// Standalone bytes 0x80-0x9F are continuation bytes and get rejected
// along with every other stray continuation, so the C1 control range
// never passes on its own.
// Overlong encodings and surrogate code points are not detected
func ValidateUTF8(b []byte) (offset int, ok bool) {
	state := uint8(stateAccept)
	for i, c := range b {
		if state == stateAccept {
			offset = i
		}

		state = transitions[state][byteClass[c]]
		if state == stateReject {
			return offset, false
		}
	}

	if state != stateAccept {
		return offset, false
	}
	return len(b), true
}

// Valid reports whether b is accepted by ValidateUTF8
func Valid(b []byte) bool {
	_, ok := ValidateUTF8(b)
	return ok
}
