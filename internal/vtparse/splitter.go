package vtparse

// parseState is the splitter's state machine position, mirroring the
// teacher tokenizer's escState but generalized to rune-at-a-time feeding
// and the 8-bit C1 inducers alongside the 7-bit ESC-introduced forms.
type parseState int

const (
	stateText parseState = iota
	stateControlCharacter
	stateEscapeSequence
	stateDCSSequence
	stateCSISequence
	stateOSCSequence
)

// C0 single-character functions (spec C0_SET), each emitted as its own
// one-rune ElementControl.
const (
	c0Bell                 = 0x07
	c0Backspace            = 0x08
	c0CR                   = 0x0D
	c0ReturnTerminalStatus = 0x05
	c0FormFeed             = 0x0C
	c0LineFeed             = 0x0A
	c0ShiftIn              = 0x0F
	c0ShiftOut             = 0x0E
	c0HorizontalTab        = 0x09
	c0VerticalTab          = 0x0B
)

const (
	runeESC = 0x1B
	runeDCS = 0x90 // 8-bit Device Control String inducer
	runeCSI = 0x9B // 8-bit Control Sequence Introducer
	runeOSC = 0x9D // 8-bit Operating System Command inducer
	runeST  = 0x9C // 8-bit String Terminator
)

var c0Set = map[rune]bool{
	c0Bell: true, c0Backspace: true, c0CR: true, c0ReturnTerminalStatus: true,
	c0FormFeed: true, c0LineFeed: true, c0ShiftIn: true, c0ShiftOut: true,
	c0HorizontalTab: true, c0VerticalTab: true,
}

// splitter carves an incoming rune stream into maximal, non-overlapping raw
// sequences: text runs, lone C0 control characters, and ESC/DCS/CSI/OSC
// envelopes complete with their inducer and terminator. It never blocks and
// never requires lookahead past the current rune.
//
// Its two callbacks are invoked synchronously from inside feed, in the
// ordering spec.md §5 requires: a text run's element_added fires before an
// interrupting control sequence's, and transient_text_updated never fires
// after the element_added that closes the run it describes.
type splitter struct {
	state   parseState
	builder []rune

	// oscPendingST is set after an ESC is seen mid-OSC, while waiting to
	// see whether the next rune is '\\' (closing the two-byte ST form).
	oscPendingST bool

	onElement   func(StreamElement)
	onTransient func(string)
}

func newSplitter(onElement func(StreamElement), onTransient func(string)) *splitter {
	return &splitter{
		state:       stateText,
		onElement:   onElement,
		onTransient: onTransient,
	}
}

// reset clears in-progress state, recovering a splitter stuck in a
// non-TEXT state because its terminator never arrived. Per spec.md §4.1
// this is the application's responsibility, not something feed does on
// its own.
func (s *splitter) reset() {
	s.state = stateText
	s.builder = s.builder[:0]
	s.oscPendingST = false
}

// feed advances the state machine by one rune. It produces zero, one or
// two appended StreamElements (two when a C0 control closes a pending text
// run: the run, then the control) and zero or one transient-text
// notification.
func (s *splitter) feed(c rune) {
	switch s.state {
	case stateText:
		s.feedText(c)
	case stateEscapeSequence:
		s.feedEscapeSequence(c)
	case stateDCSSequence:
		s.feedTerminatedByST(c)
	case stateCSISequence:
		s.feedCSI(c)
	case stateOSCSequence:
		s.feedOSC(c)
	}
}

func (s *splitter) feedText(c rune) {
	if c0Set[c] {
		s.emit()
		s.state = stateControlCharacter
		s.builder = append(s.builder, c)
		s.emit()
		s.state = stateText
		return
	}
	switch c {
	case runeESC:
		s.emit()
		s.builder = append(s.builder, c)
		s.state = stateEscapeSequence
	case runeDCS:
		s.emit()
		s.builder = append(s.builder, c)
		s.state = stateDCSSequence
	case runeCSI:
		s.emit()
		s.builder = append(s.builder, c)
		s.state = stateCSISequence
	case runeOSC:
		s.emit()
		s.builder = append(s.builder, c)
		s.state = stateOSCSequence
	default:
		s.builder = append(s.builder, c)
		if s.onTransient != nil {
			s.onTransient(string(s.builder))
		}
	}
}

// feedEscapeSequence handles the second character of a 7-bit escape. It may
// reclassify the nascent sequence into DCS/CSI/OSC without emitting — the
// already-appended ESC stays the first byte of the resulting raw text — or
// it may close a plain ESC-final sequence immediately.
func (s *splitter) feedEscapeSequence(c rune) {
	s.builder = append(s.builder, c)
	switch c {
	case 'P':
		s.state = stateDCSSequence
	case '[':
		s.state = stateCSISequence
	case ']':
		s.state = stateOSCSequence
	default:
		if escEndSet[c] {
			s.emit()
			s.state = stateText
		}
		// Otherwise this is an intermediate byte (e.g. SPACE, '#', '%') of a
		// multi-byte ESC final; stay in stateEscapeSequence and keep
		// appending until a recognized final arrives.
	}
}

func (s *splitter) feedCSI(c rune) {
	s.builder = append(s.builder, c)
	if c >= 0x40 && c <= 0x7E {
		s.emit()
		s.state = stateText
	}
}

// feedTerminatedByST handles DCS, which spec.md §4.1 terminates only on ST
// (0x9C).
func (s *splitter) feedTerminatedByST(c rune) {
	s.builder = append(s.builder, c)
	if c == runeST {
		s.emit()
		s.state = stateText
	}
}

// feedOSC handles OSC, terminated by BEL (0x07), ST (0x9C), or the two-byte
// ESC \ form — the extension spec.md §9's open question OQ3 calls for.
func (s *splitter) feedOSC(c rune) {
	s.builder = append(s.builder, c)
	if s.oscPendingST {
		s.oscPendingST = false
		if c == '\\' {
			s.emit()
			s.state = stateText
		}
		return
	}
	switch c {
	case c0Bell, runeST:
		s.emit()
		s.state = stateText
	case runeESC:
		s.oscPendingST = true
	}
}

// emit flushes the builder as a StreamElement if non-empty. The state is
// left untouched; callers perform the TEXT transition explicitly, per
// spec.md §4.1's emit() policy.
func (s *splitter) emit() {
	if len(s.builder) == 0 {
		return
	}
	var el StreamElement
	if s.state == stateText {
		el = StreamElement{Kind: ElementText, Text: string(s.builder)}
	} else {
		raw := string(s.builder)
		kind, params := classify(raw)
		el = StreamElement{
			Kind:        ElementControl,
			RawText:     raw,
			ControlKind: kind,
			Parameters:  params,
		}
	}
	s.builder = s.builder[:0]
	s.oscPendingST = false
	if s.onElement != nil {
		s.onElement(el)
	}
}

// escEndSet is the 7-bit ESC terminal characters that close a plain ESC
// sequence (as opposed to routing into DCS/CSI/OSC, which 'P'/'['/']'
// handle separately in feedEscapeSequence).
var escEndSet = buildEscEndSet()

func buildEscEndSet() map[rune]bool {
	chars := []rune{
		'D', 'E', 'H', 'M', 'N', 'O', 'V', 'W', 'X', 'Z', '\\', '^', '_',
		'F', 'G', 'L', '3', '4', '5', '6', '8', '@',
		'0', 'A', 'B', 'C', 'R', 'Q', 'K', 'Y', '7', '=', '9', '>',
		'c', 'l', 'm', 'n', 'o', '|', '}', '~',
	}
	set := make(map[rune]bool, len(chars))
	for _, c := range chars {
		set[c] = true
	}
	return set
}
