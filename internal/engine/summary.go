package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// SessionSummary describes one finished session.
type SessionSummary struct {
	ID         string
	Score      int
	Length     int
	Ticks      int
	FoodEaten  int
	FinalSpeed time.Duration
	Cause      EndCause
	NewHigh    bool
	Grade      string
}

// ScoreLetterGrade maps a final score to a letter grade.
func ScoreLetterGrade(score int) string {
	switch {
	case score >= 60:
		return "A+"
	case score >= 40:
		return "A"
	case score >= 30:
		return "B+"
	case score >= 20:
		return "B"
	case score >= 15:
		return "C+"
	case score >= 10:
		return "C"
	case score >= 5:
		return "D"
	default:
		return "F"
	}
}

// ResultLine is the one-line result shared from the game-over screen.
func (s SessionSummary) ResultLine(highScore int) string {
	return fmt.Sprintf("Snake: scored %d (grade %s, length %d, best %d)",
		s.Score, s.Grade, s.Length, highScore)
}

// FormatSummaries renders a table of sessions.
func FormatSummaries(all []SessionSummary) string {
	var sb strings.Builder
	sb.WriteString("  session   score grade length ticks speed  cause\n")
	for _, s := range all {
		mark := ""
		if s.NewHigh {
			mark = " *"
		}
		fmt.Fprintf(&sb, "  %-8s %6d %-5s %6d %5d %5dms %s%s\n",
			s.ID, s.Score, s.Grade, s.Length, s.Ticks, s.FinalSpeed.Milliseconds(), s.Cause, mark)
	}
	return sb.String()
}

// FormatCauseBreakdown counts sessions per end cause, sorted by cause name.
func FormatCauseBreakdown(all []SessionSummary) string {
	counts := map[string]int{}
	for _, s := range all {
		counts[s.Cause.String()]++
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}
