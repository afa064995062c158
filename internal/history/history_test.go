package history

import (
	"reflect"
	"testing"

	"github.com/vtstream-dev/vtstream/internal/vtparse"
)

func text(s string) vtparse.StreamElement {
	return vtparse.StreamElement{Kind: vtparse.ElementText, Text: s}
}

func TestRingRetainsInsertionOrder(t *testing.T) {
	r := New(0)
	r.Push(text("a"))
	r.Push(text("b"))
	r.Push(text("c"))

	got := r.Snapshot()
	want := []vtparse.StreamElement{text("a"), text("b"), text("c")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Snapshot() = %+v, want %+v", got, want)
	}
}

func TestRingEvictsOldestAtCapacity(t *testing.T) {
	r := New(2)
	r.Push(text("a"))
	r.Push(text("b"))
	r.Push(text("c"))

	got := r.Snapshot()
	want := []vtparse.StreamElement{text("b"), text("c")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Snapshot() = %+v, want %+v", got, want)
	}
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
}
