package game

import (
	"fmt"
	"testing"

	"github.com/Garsondee/Snake-Sense/internal/engine"
)

func TestEventFeed_RecentOrder(t *testing.T) {
	f := NewEventFeed()
	for i := 0; i < 3; i++ {
		f.Add(engine.SimLogEntry{Tick: i, Category: "food", Key: "eaten", Value: fmt.Sprint(i)})
	}
	got := f.Recent()
	if len(got) != 3 || got[0].Tick != 0 || got[2].Tick != 2 {
		t.Fatalf("Recent = %+v", got)
	}
	if got[1].Message != "eaten 1" {
		t.Fatalf("message = %q", got[1].Message)
	}
}

func TestEventFeed_Wraps(t *testing.T) {
	f := NewEventFeed()
	for i := 0; i < feedMaxEntries+5; i++ {
		f.Add(engine.SimLogEntry{Tick: i})
	}
	got := f.Recent()
	if f.Len() != feedMaxEntries || len(got) != feedMaxEntries {
		t.Fatalf("len = %d, want %d", len(got), feedMaxEntries)
	}
	if got[0].Tick != 5 || got[len(got)-1].Tick != feedMaxEntries+4 {
		t.Fatalf("window = %d..%d", got[0].Tick, got[len(got)-1].Tick)
	}
}
