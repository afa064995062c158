package vtparse

import "testing"

func TestStreamStoreAppendAndRead(t *testing.T) {
	s := newStreamStore()
	if s.Len() != 0 {
		t.Fatalf("Len() = %d on empty store", s.Len())
	}

	idx := s.append(StreamElement{Kind: ElementText, Text: "a"})
	if idx != 0 {
		t.Fatalf("append returned index %d, want 0", idx)
	}
	s.append(StreamElement{Kind: ElementText, Text: "b"})

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	el, ok := s.At(1)
	if !ok || el.Text != "b" {
		t.Fatalf("At(1) = %+v, %v", el, ok)
	}

	if _, ok := s.At(5); ok {
		t.Fatalf("At(5) should be out of range")
	}
}

func TestStreamStoreElementsIsACopy(t *testing.T) {
	s := newStreamStore()
	s.append(StreamElement{Kind: ElementText, Text: "a"})

	snapshot := s.Elements()
	snapshot[0].Text = "mutated"

	el, _ := s.At(0)
	if el.Text != "a" {
		t.Fatalf("mutating Elements() result leaked into store: %q", el.Text)
	}
}
