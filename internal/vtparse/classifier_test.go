package vtparse

import (
	"reflect"
	"testing"
)

func TestClassifySCF(t *testing.T) {
	kind, params := classify("\x07")
	if kind != ControlBell || params != nil {
		t.Fatalf("got (%v, %v), want (BELL, nil)", kind, params)
	}
}

func TestClassifyEscSaveRestoreCursor(t *testing.T) {
	cases := []struct {
		raw  string
		want ControlSequenceType
	}{
		{"\x1b7", ControlSaveCursor},
		{"\x1b8", ControlRestoreCursor},
		{"\x1b#8", ControlDecScreenAlignmentTest},
		{"\x1b F", ControlSevenBitControls},
		{"\x1bF", ControlCursorToLowerLeftCornerOfScreen},
	}
	for _, c := range cases {
		kind, _ := classify(c.raw)
		if kind != c.want {
			t.Errorf("classify(%q) = %v, want %v", c.raw, kind, c.want)
		}
	}
}

func TestClassifyDesignateCharacterSet(t *testing.T) {
	kind, params := classify("\x1b(0")
	if kind != ControlDesignateG0CharacterSetVT100 || params != nil {
		t.Fatalf("got (%v, %v)", kind, params)
	}
}

func TestClassifyCSIParameters(t *testing.T) {
	kind, params := classify("\x1b[38;5;196m")
	if kind != ControlCharacterAttributes {
		t.Fatalf("kind = %v, want CHARACTER_ATTRIBUTES", kind)
	}
	if !reflect.DeepEqual(params, []string{"38", "5", "196"}) {
		t.Fatalf("params = %v", params)
	}
}

func TestClassifyCSIEightBitIntroducer(t *testing.T) {
	kind, params := classify("\u009b38;5;196m")
	if kind != ControlCharacterAttributes {
		t.Fatalf("kind = %v, want CHARACTER_ATTRIBUTES", kind)
	}
	if !reflect.DeepEqual(params, []string{"38", "5", "196"}) {
		t.Fatalf("params = %v", params)
	}
}

func TestClassifyCSIAmbiguousFinals(t *testing.T) {
	cases := []struct {
		raw  string
		want ControlSequenceType
	}{
		{"\x1b[J", ControlEraseInDisplayED},
		{"\x1b[?J", ControlEraseInDisplayDECSED},
		{"\x1b[25h", ControlSetMode},
		{"\x1b[?25h", ControlDecPrivateModeSet},
		{"\x1b[?25l", ControlDecPrivateModeReset},
	}
	for _, c := range cases {
		kind, _ := classify(c.raw)
		if kind != c.want {
			t.Errorf("classify(%q) = %v, want %v", c.raw, kind, c.want)
		}
	}
}

func TestClassifyBellVolume(t *testing.T) {
	cases := []struct {
		raw  string
		want ControlSequenceType
	}{
		{"\x1b[ 5t", ControlSetWarningBellVolume},
		{"\x1b[ 5u", ControlSetMarginBellVolume},
	}
	for _, c := range cases {
		kind, params := classify(c.raw)
		if kind != c.want {
			t.Errorf("classify(%q) = %v, want %v", c.raw, kind, c.want)
		}
		if !reflect.DeepEqual(params, []string{"5"}) {
			t.Errorf("classify(%q) params = %v", c.raw, params)
		}
	}
}

func TestClassifyInsertDeleteColumns(t *testing.T) {
	cases := []struct {
		raw  string
		want ControlSequenceType
	}{
		{"\x1b[2'}", ControlInsertColumns},
		{"\x1b[2'~", ControlDeleteColumns},
	}
	for _, c := range cases {
		kind, params := classify(c.raw)
		if kind != c.want {
			t.Errorf("classify(%q) = %v, want %v", c.raw, kind, c.want)
		}
		if !reflect.DeepEqual(params, []string{"2"}) {
			t.Errorf("classify(%q) params = %v", c.raw, params)
		}
	}
}

func TestClassifyFinalTerm(t *testing.T) {
	kind, params := classify("\x1b[?1Y")
	if kind != ControlFinalTerm {
		t.Fatalf("kind = %v, want FINAL_TERM", kind)
	}
	if !reflect.DeepEqual(params, []string{"1"}) {
		t.Fatalf("params = %v", params)
	}
}

func TestClassifyOSCAllTerminators(t *testing.T) {
	cases := []string{
		"\x1b]0;title\x07",
		"\x1b]0;title\u009c",
		"\x1b]0;title\x1b\\",
	}
	for _, raw := range cases {
		kind, params := classify(raw)
		if kind != ControlSetTextParameters {
			t.Errorf("classify(%q) kind = %v, want SET_TEXT_PARAMETERS", raw, kind)
		}
		if !reflect.DeepEqual(params, []string{"0", "title"}) {
			t.Errorf("classify(%q) params = %v", raw, params)
		}
	}
}

func TestClassifyDCSVariants(t *testing.T) {
	cases := []struct {
		raw  string
		want ControlSequenceType
	}{
		{"\x1bP$qfoo\u009c", ControlRequestStatusString},
		{"\x1bP+pfoo\u009c", ControlSetTermcapData},
		{"\x1bP+qfoo\u009c", ControlRequestTermcapString},
		{"\x1bPfoo\u009c", ControlUserDefinedKeys},
	}
	for _, c := range cases {
		kind, _ := classify(c.raw)
		if kind != c.want {
			t.Errorf("classify(%q) = %v, want %v", c.raw, kind, c.want)
		}
	}
}

func TestClassifyUnknownFinal(t *testing.T) {
	kind, params := classify("\x1b[5\xFF")
	if kind != ControlUnknown || params != nil {
		t.Fatalf("got (%v, %v), want (UNKNOWN, nil)", kind, params)
	}
}

func TestClassifyEmptyPayloadYieldsNilParameters(t *testing.T) {
	kind, params := classify("\x1b[m")
	if kind != ControlCharacterAttributes {
		t.Fatalf("kind = %v", kind)
	}
	if params != nil {
		t.Fatalf("params = %v, want nil for empty payload", params)
	}
}

func TestNumericParameter(t *testing.T) {
	el := StreamElement{Parameters: []string{"38", "", "bogus"}}
	if got := el.NumericParameter(0, -1); got != 38 {
		t.Errorf("NumericParameter(0) = %d, want 38", got)
	}
	if got := el.NumericParameter(1, -1); got != 0 {
		t.Errorf("NumericParameter(1) = %d, want 0 for empty string", got)
	}
	if got := el.NumericParameter(2, -1); got != 0 {
		t.Errorf("NumericParameter(2) = %d, want 0 for unparseable", got)
	}
	if got := el.NumericParameter(5, -1); got != -1 {
		t.Errorf("NumericParameter(5) = %d, want default -1", got)
	}
}

func TestTextParameter(t *testing.T) {
	el := StreamElement{Parameters: []string{"title"}}
	if got := el.TextParameter(0, "x"); got != "title" {
		t.Errorf("TextParameter(0) = %q", got)
	}
	if got := el.TextParameter(1, "fallback"); got != "fallback" {
		t.Errorf("TextParameter(1) = %q, want default", got)
	}
}
