package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Garsondee/Snake-Sense/internal/engine"
	"github.com/Garsondee/Snake-Sense/internal/scorestore"
)

func TestFirstTick(t *testing.T) {
	entries := []engine.SimLogEntry{
		{Tick: 3, Category: "speed", Key: "change", Value: "150ms → 140ms"},
		{Tick: 9, Category: "speed", Key: "change", Value: "80ms → 70ms"},
	}
	if got := firstTick(entries, "speed", "change", ""); got != 3 {
		t.Fatalf("firstTick = %d, want 3", got)
	}
	if got := firstTick(entries, "speed", "change", "→ 70ms"); got != 9 {
		t.Fatalf("firstTick(floor) = %d, want 9", got)
	}
	if got := firstTick(entries, "food", "eaten", ""); got != -1 {
		t.Fatalf("missing marker = %d, want -1", got)
	}
}

func TestTopTrait_StableOnTies(t *testing.T) {
	if got := topTrait(map[string]int{"B": 2, "A": 2, "F": 1}); got != "A(2)" {
		t.Fatalf("topTrait = %q, want A(2)", got)
	}
	if got := topTrait(nil); got != "" {
		t.Fatalf("empty topTrait = %q", got)
	}
}

func TestAvgHelpers(t *testing.T) {
	if avg(7, 2) != 3.5 || avg(1, 0) != 0 {
		t.Fatal("avg mismatch")
	}
	if avgTickString(nil) != "n/a" || avgTickString([]int{2, 3}) != "2.5" {
		t.Fatal("avgTickString mismatch")
	}
	if joinSet(nil) != "none" || joinSet(map[string]struct{}{"b": {}, "a": {}}) != "a,b" {
		t.Fatal("joinSet mismatch")
	}
}

func TestRunSession_AutopilotEnds(t *testing.T) {
	ts := engine.NewTestSim(engine.WithBoard(20, 200, 200), engine.WithSeed(5), engine.WithAutopilot())
	rs := runSession(ts, 1, 5, 20000)
	if ts.Engine.Running() {
		t.Fatal("session still running after runSession")
	}
	if rs.summary.Cause == engine.CauseNone {
		t.Fatal("summary missing end cause")
	}
	if rs.summary.Score > 0 && rs.firstFoodTick < 1 {
		t.Fatalf("scored %d but first_food=%d", rs.summary.Score, rs.firstFoodTick)
	}
	if rs.peakLength != rs.summary.Score+engine.InitialLength {
		t.Fatalf("peak length %d, score %d", rs.peakLength, rs.summary.Score)
	}
	if rs.endTick != rs.summary.Ticks {
		t.Fatalf("end tick %d, summary ticks %d", rs.endTick, rs.summary.Ticks)
	}
	if !strings.Contains(rs.finalTicks, "session  end") {
		t.Fatalf("final ticks missing the end entry:\n%s", rs.finalTicks)
	}
	for _, line := range strings.Split(strings.TrimSpace(rs.finalTicks), "\n") {
		var tick int
		if _, err := fmt.Sscanf(line, "[T=%d]", &tick); err != nil || tick < rs.endTick-endWindow {
			t.Fatalf("line outside the end window: %q", line)
		}
	}
}

func TestRunSession_SharedFileStore(t *testing.T) {
	store := scorestore.Open(filepath.Join(t.TempDir(), "hs.json"))
	best := 0
	for seed := int64(1); seed <= 3; seed++ {
		ts := engine.NewTestSim(engine.WithBoard(20, 200, 200), engine.WithSeed(seed),
			engine.WithStore(store), engine.WithAutopilot())
		rs := runSession(ts, int(seed), seed, 20000)
		if rs.summary.Score > best {
			best = rs.summary.Score
		}
	}
	got, err := store.Load()
	if err != nil || got != best {
		t.Fatalf("stored high score = %d err=%v, want %d", got, err, best)
	}
}
