package ptywrap

import (
	"testing"
	"time"
)

func TestResponseFilterStripsDSRDuringDrainWindow(t *testing.T) {
	f := newResponseFilter(time.Minute)
	out := f.Filter([]byte("before\x1b[3;1Rafter"))
	if string(out) != "beforeafter" {
		t.Fatalf("Filter = %q, want %q", out, "beforeafter")
	}
}

func TestResponseFilterStripsOSC11DuringDrainWindow(t *testing.T) {
	f := newResponseFilter(time.Minute)
	out := f.Filter([]byte("x\x1b]11;rgb:0000/0000/0000\x07y"))
	if string(out) != "xy" {
		t.Fatalf("Filter = %q, want %q", out, "xy")
	}
}

func TestResponseFilterAcceptsSTTerminatedOSC11(t *testing.T) {
	f := newResponseFilter(time.Minute)
	out := f.Filter([]byte("x\x1b]11;rgb:ffff/ffff/ffff\x1b\\y"))
	if string(out) != "xy" {
		t.Fatalf("Filter = %q, want %q", out, "xy")
	}
}

func TestResponseFilterPassesThroughAfterWindowExpires(t *testing.T) {
	f := newResponseFilter(-time.Second)
	raw := "\x1b[3;1R"
	out := f.Filter([]byte(raw))
	if string(out) != raw {
		t.Fatalf("Filter = %q, want passthrough %q", out, raw)
	}
}

func TestResponseFilterHoldsLoneEscapeAcrossCalls(t *testing.T) {
	f := newResponseFilter(time.Minute)
	out := f.Filter([]byte("a\x1b"))
	if string(out) != "a" {
		t.Fatalf("Filter first call = %q, want %q", out, "a")
	}
	out = f.Filter([]byte("[3;1R"))
	if len(out) != 0 {
		t.Fatalf("Filter second call = %q, want the DSR response fully absorbed", out)
	}
}

func TestResponseFilterFlushReturnsUnterminatedBuffer(t *testing.T) {
	f := newResponseFilter(time.Minute)
	f.Filter([]byte("a\x1b"))
	flushed := f.Flush()
	if string(flushed) != "\x1b" {
		t.Fatalf("Flush = %q, want %q", flushed, "\x1b")
	}
	if second := f.Flush(); len(second) != 0 {
		t.Fatalf("second Flush = %q, want empty", second)
	}
}

func TestOSC11ResponseLen(t *testing.T) {
	cases := []struct {
		raw     string
		wantLen int
		wantOK  bool
	}{
		{"\x1b]11;rgb:0000/0000/0000\x07", 24, true},
		{"\x1b]11;rgb:0000/0000/0000\x1b\\", 25, true},
		{"\x1b]10;rgb:0000/0000/0000\x07", 0, false},
		{"\x1b[3;1R", 0, false},
	}
	for _, c := range cases {
		gotLen, ok := osc11ResponseLen([]byte(c.raw))
		if ok != c.wantOK || gotLen != c.wantLen {
			t.Errorf("osc11ResponseLen(%q) = (%d, %v), want (%d, %v)", c.raw, gotLen, ok, c.wantLen, c.wantOK)
		}
	}
}

func TestDSRResponseLen(t *testing.T) {
	cases := []struct {
		raw     string
		wantLen int
		wantOK  bool
	}{
		{"\x1b[3;1R", 6, true},
		{"\x1b[R", 0, false},
		{"\x1b]11;x\x07", 0, false},
	}
	for _, c := range cases {
		gotLen, ok := dsrResponseLen([]byte(c.raw))
		if ok != c.wantOK || gotLen != c.wantLen {
			t.Errorf("dsrResponseLen(%q) = (%d, %v), want (%d, %v)", c.raw, gotLen, ok, c.wantLen, c.wantOK)
		}
	}
}
