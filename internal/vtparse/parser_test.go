package vtparse

import (
	"reflect"
	"testing"
)

func feedAll(p *Parser, s string) {
	for _, c := range s {
		p.Feed(c)
	}
}

func TestScenarioPlainText(t *testing.T) {
	p := New()
	var transients []string
	p.OnTransientText(func(s string) { transients = append(transients, s) })
	feedAll(p, "hello")

	els := p.Elements()
	if len(els) != 1 || els[0].Kind != ElementText || els[0].Text != "hello" {
		t.Fatalf("elements = %+v", els)
	}
	want := []string{"h", "he", "hel", "hell", "hello"}
	if !reflect.DeepEqual(transients, want) {
		t.Fatalf("transients = %v, want %v", transients, want)
	}
}

func TestScenarioTextInterruptedByBell(t *testing.T) {
	p := New()
	feedAll(p, "ab\x07cd")

	els := p.Elements()
	if len(els) != 3 {
		t.Fatalf("len(elements) = %d, want 3: %+v", len(els), els)
	}
	if els[0].Kind != ElementText || els[0].Text != "ab" {
		t.Errorf("els[0] = %+v", els[0])
	}
	if els[1].Kind != ElementControl || els[1].ControlKind != ControlBell || els[1].RawText != "\x07" {
		t.Errorf("els[1] = %+v", els[1])
	}
	if els[2].Kind != ElementText || els[2].Text != "cd" {
		t.Errorf("els[2] = %+v", els[2])
	}
}

func TestScenarioSGRAroundText(t *testing.T) {
	p := New()
	feedAll(p, "\x1b[31mX\x1b[0m")

	els := p.Elements()
	if len(els) != 3 {
		t.Fatalf("len(elements) = %d: %+v", len(els), els)
	}
	if els[0].ControlKind != ControlCharacterAttributes || !reflect.DeepEqual(els[0].Parameters, []string{"31"}) {
		t.Errorf("els[0] = %+v", els[0])
	}
	if els[1].Kind != ElementText || els[1].Text != "X" {
		t.Errorf("els[1] = %+v", els[1])
	}
	if els[2].ControlKind != ControlCharacterAttributes || !reflect.DeepEqual(els[2].Parameters, []string{"0"}) {
		t.Errorf("els[2] = %+v", els[2])
	}
}

func TestScenarioOSCSetTitle(t *testing.T) {
	p := New()
	feedAll(p, "\x1b]0;title\x07rest")

	els := p.Elements()
	if len(els) != 2 {
		t.Fatalf("len(elements) = %d: %+v", len(els), els)
	}
	if els[0].ControlKind != ControlSetTextParameters || !reflect.DeepEqual(els[0].Parameters, []string{"0", "title"}) {
		t.Errorf("els[0] = %+v", els[0])
	}
	if els[1].Kind != ElementText || els[1].Text != "rest" {
		t.Errorf("els[1] = %+v", els[1])
	}
}

func TestScenarioFinalTermPromptStart(t *testing.T) {
	p := New()
	feedAll(p, "\x1b[?1Y")

	els := p.Elements()
	if len(els) != 1 || els[0].ControlKind != ControlFinalTerm || !reflect.DeepEqual(els[0].Parameters, []string{"1"}) {
		t.Fatalf("elements = %+v", els)
	}
}

func TestScenarioDecPrivateModeSetThenReset(t *testing.T) {
	p := New()
	feedAll(p, "\x1b[?25h\x1b[?25l")

	els := p.Elements()
	if len(els) != 2 {
		t.Fatalf("len(elements) = %d: %+v", len(els), els)
	}
	if els[0].ControlKind != ControlDecPrivateModeSet || !reflect.DeepEqual(els[0].Parameters, []string{"25"}) {
		t.Errorf("els[0] = %+v", els[0])
	}
	if els[1].ControlKind != ControlDecPrivateModeReset || !reflect.DeepEqual(els[1].Parameters, []string{"25"}) {
		t.Errorf("els[1] = %+v", els[1])
	}
}

func TestBoundaryEscAloneStaysInEscapeSequence(t *testing.T) {
	p := New()
	p.Feed(0x1b)
	if len(p.Elements()) != 0 {
		t.Fatalf("expected no emitted elements after bare ESC, got %+v", p.Elements())
	}
	if p.splitter.state != stateEscapeSequence {
		t.Fatalf("state = %v, want stateEscapeSequence", p.splitter.state)
	}
}

func TestBoundaryEscSaveCursor(t *testing.T) {
	p := New()
	feedAll(p, "\x1b7")
	els := p.Elements()
	if len(els) != 1 || els[0].ControlKind != ControlSaveCursor {
		t.Fatalf("elements = %+v", els)
	}
	if p.splitter.state != stateText {
		t.Fatalf("state = %v, want stateText", p.splitter.state)
	}
}

func TestBoundaryEightBitCSI(t *testing.T) {
	p := New()
	p.Feed(0x9b)
	feedAll(p, "38;5;196m")

	els := p.Elements()
	if len(els) != 1 {
		t.Fatalf("elements = %+v", els)
	}
	if els[0].ControlKind != ControlCharacterAttributes {
		t.Errorf("kind = %v", els[0].ControlKind)
	}
	if !reflect.DeepEqual(els[0].Parameters, []string{"38", "5", "196"}) {
		t.Errorf("params = %v", els[0].Parameters)
	}
}

func TestResetRecoversFromStuckState(t *testing.T) {
	p := New()
	p.Feed(0x1b)
	if p.splitter.state == stateText {
		t.Fatalf("expected non-text state before Reset")
	}
	p.Reset()
	if p.splitter.state != stateText {
		t.Fatalf("state after Reset = %v, want stateText", p.splitter.state)
	}
	feedAll(p, "ok\x07")
	els := p.Elements()
	if len(els) != 2 || els[0].Text != "ok" || els[1].ControlKind != ControlBell {
		t.Fatalf("elements after reset+feed = %+v", els)
	}
}

func TestElementAddedOrderingAroundInterruptedTextRun(t *testing.T) {
	p := New()
	var order []string
	p.OnElementAdded(func(el StreamElement) {
		if el.Kind == ElementText {
			order = append(order, "text:"+el.Text)
		} else {
			order = append(order, "ctrl:"+string(el.ControlKind))
		}
	})
	feedAll(p, "ab\x07cd")

	want := []string{"text:ab", "ctrl:BELL", "text:cd"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
}

func TestTransientNeverFollowsClosingElementAdded(t *testing.T) {
	p := New()
	var events []string
	p.OnElementAdded(func(el StreamElement) { events = append(events, "added") })
	p.OnTransientText(func(s string) { events = append(events, "transient:"+s) })

	feedAll(p, "hi\x07")

	want := []string{"transient:h", "transient:hi", "added", "added"}
	if !reflect.DeepEqual(events, want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
}

func TestFeedStringEquivalentToFeed(t *testing.T) {
	a, b := New(), New()
	for _, c := range "ab\x1b[31mX" {
		a.Feed(c)
	}
	b.FeedString("ab\x1b[31mX")

	if !reflect.DeepEqual(a.Elements(), b.Elements()) {
		t.Fatalf("Feed vs FeedString diverged: %+v vs %+v", a.Elements(), b.Elements())
	}
}
