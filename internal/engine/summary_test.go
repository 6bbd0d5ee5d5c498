package engine

import (
	"strings"
	"testing"
	"time"
)

func TestScoreLetterGrade(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{0, "F"}, {4, "F"}, {5, "D"}, {10, "C"}, {15, "C+"},
		{20, "B"}, {30, "B+"}, {40, "A"}, {59, "A"}, {60, "A+"},
	}
	for _, c := range cases {
		if got := ScoreLetterGrade(c.score); got != c.want {
			t.Errorf("ScoreLetterGrade(%d) = %q, want %q", c.score, got, c.want)
		}
	}
}

func TestFormatCauseBreakdown(t *testing.T) {
	if got := FormatCauseBreakdown(nil); got != "none" {
		t.Fatalf("empty breakdown = %q", got)
	}
	all := []SessionSummary{{Cause: CauseWall}, {Cause: CauseSelf}, {Cause: CauseWall}}
	if got := FormatCauseBreakdown(all); got != "self=1 wall=2" {
		t.Fatalf("breakdown = %q", got)
	}
}

func TestFormatSummaries_MarksRecords(t *testing.T) {
	out := FormatSummaries([]SessionSummary{
		{ID: "aaaa1111", Score: 7, Grade: "D", Length: 10, Ticks: 90, FinalSpeed: 140 * time.Millisecond, Cause: CauseSelf, NewHigh: true},
		{ID: "bbbb2222", Score: 2, Grade: "F", Length: 5, Ticks: 30, FinalSpeed: StartSpeed, Cause: CauseWall},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasSuffix(lines[1], "self *") || strings.HasSuffix(lines[2], "*") {
		t.Fatalf("record marker misplaced:\n%s", out)
	}
	if !strings.Contains(lines[1], "140ms") {
		t.Fatalf("speed column missing:\n%s", out)
	}
}

func TestResultLine(t *testing.T) {
	s := SessionSummary{Score: 12, Grade: "C", Length: 15}
	want := "Snake: scored 12 (grade C, length 15, best 20)"
	if got := s.ResultLine(20); got != want {
		t.Fatalf("ResultLine = %q, want %q", got, want)
	}
}
