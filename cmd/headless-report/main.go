package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/Garsondee/Snake-Sense/internal/engine"
	"github.com/Garsondee/Snake-Sense/internal/scorestore"
)

type runStats struct {
	runIndex int
	seed     int64
	summary  engine.SessionSummary
	timedOut bool

	firstFoodTick  int
	firstSpeedTick int
	floorTick      int

	foodPlaced   int
	speedChanges int
	rejected     int
	peakLength   int
	endPositions map[string]struct{}

	endTick    int
	finalTicks string // log of the last endWindow ticks
}

// endWindow is how many ticks before the end are kept for -v output.
const endWindow = 8

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var unit, width, height int
	var scoreFile string
	var verbose bool
	var fullLog bool

	flag.IntVar(&runs, "runs", 5, "number of headless autopilot sessions")
	flag.IntVar(&ticks, "ticks", 20000, "tick cap per session")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&unit, "unit", 20, "grid unit in pixels")
	flag.IntVar(&width, "width", 400, "board width in pixels")
	flag.IntVar(&height, "height", 400, "board height in pixels")
	flag.StringVar(&scoreFile, "score-file", "", "high score file shared across runs (empty = in memory)")
	flag.BoolVar(&verbose, "v", false, "print the events leading up to each session end")
	flag.BoolVar(&fullLog, "log", false, "print each run's full event log")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if unit <= 0 || width < 5*unit || height < 5*unit {
		fmt.Println("error: board must be at least 5x5 units")
		return
	}

	var store engine.ScoreStore = scorestore.NewMemory(0)
	storeLabel := "memory"
	if scoreFile != "" {
		fs := scorestore.Open(scoreFile)
		store = fs
		storeLabel = fs.Path()
	}

	fmt.Printf("=== Headless Snake Report ===\n")
	fmt.Printf("board=%dx%d unit=%d runs=%d ticks=%d seed_base=%d seed_step=%d store=%s\n\n",
		width, height, unit, runs, ticks, seedBase, seedStep, storeLabel)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		ts := engine.NewTestSim(
			engine.WithBoard(unit, width, height),
			engine.WithSeed(seed),
			engine.WithStore(store),
			engine.WithAutopilot(),
		)
		stats := runSession(ts, i+1, seed, ticks)
		all = append(all, stats)
		printRun(stats)
		if verbose && stats.finalTicks != "" {
			fmt.Printf("final_ticks (T=%d..%d):\n%s\n", max(stats.endTick-endWindow, 0), stats.endTick, stats.finalTicks)
		}
		if fullLog {
			fmt.Print(ts.SimLog.Format())
			fmt.Println()
		}
	}

	printAggregate(all)
}

func runSession(ts *engine.TestSim, runIndex int, seed int64, ticks int) runStats {
	ts.Start()
	timedOut := ts.RunUntilOver(ticks) < 0
	if timedOut {
		ts.Engine.EndSession()
	}

	entries := ts.SimLog.Entries()
	peak := 0
	ends := map[string]struct{}{}
	for _, e := range entries {
		switch {
		case e.Category == "food" && e.Key == "eaten":
			if n := int(e.NumVal) + engine.InitialLength; n > peak {
				peak = n
			}
		case e.Category == "move" && e.Key == "collision":
			ends[e.Value] = struct{}{}
		}
	}
	if peak == 0 {
		peak = engine.InitialLength
	}

	endTick := -1
	finalTicks := ""
	if end, ok := ts.SimLog.LastOf("session", "end"); ok {
		endTick = end.Tick
		finalTicks = ts.SimLog.FormatWindow(end.Tick-endWindow, end.Tick)
	}

	sum, _ := ts.Engine.LastSummary()
	return runStats{
		runIndex:       runIndex,
		seed:           seed,
		summary:        sum,
		timedOut:       timedOut,
		firstFoodTick:  firstTick(entries, "food", "eaten", ""),
		firstSpeedTick: firstTick(entries, "speed", "change", ""),
		floorTick:      firstTick(entries, "speed", "change", "→ "+engine.SpeedFloor.String()),
		foodPlaced:     ts.SimLog.CountCategory("food", "placed"),
		speedChanges:   ts.SimLog.CountCategory("speed", "change"),
		rejected:       ts.SimLog.CountCategory("input", "rejected_reverse"),
		peakLength:     peak,
		endPositions:   ends,
		endTick:        endTick,
		finalTicks:     finalTicks,
	}
}

func firstTick(entries []engine.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	s := rs.summary
	fmt.Printf("--- Run %d (seed=%d session=%s) ---\n", rs.runIndex, rs.seed, s.ID)
	fmt.Printf("result: score=%d grade=%s length=%d ticks=%d cause=%s new_high=%v timed_out=%v\n",
		s.Score, s.Grade, s.Length, s.Ticks, s.Cause, s.NewHigh, rs.timedOut)
	fmt.Printf("phase_markers: first_food=%d first_speedup=%d speed_floor=%d\n",
		rs.firstFoodTick, rs.firstSpeedTick, rs.floorTick)
	fmt.Printf("event_totals: food_placed=%d speed_change=%d rejected_reverse=%d final_speed=%v\n",
		rs.foodPlaced, rs.speedChanges, rs.rejected, s.FinalSpeed)
	fmt.Printf("collision_at: %s\n", joinSet(rs.endPositions))
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalScore := 0
	totalTicks := 0
	totalSpeed := 0
	totalPeak := 0
	best := 0
	timedOut := 0

	foodTicks := make([]int, 0, len(all))
	speedTicks := make([]int, 0, len(all))
	floorTicks := make([]int, 0, len(all))
	grades := map[string]int{}
	summaries := make([]engine.SessionSummary, 0, len(all))

	for _, rs := range all {
		s := rs.summary
		summaries = append(summaries, s)
		totalScore += s.Score
		totalTicks += s.Ticks
		totalSpeed += rs.speedChanges
		totalPeak += rs.peakLength
		if s.Score > best {
			best = s.Score
		}
		if rs.timedOut {
			timedOut++
		}
		if rs.firstFoodTick >= 0 {
			foodTicks = append(foodTicks, rs.firstFoodTick)
		}
		if rs.firstSpeedTick >= 0 {
			speedTicks = append(speedTicks, rs.firstSpeedTick)
		}
		if rs.floorTick >= 0 {
			floorTicks = append(floorTicks, rs.floorTick)
		}
		grades[s.Grade]++
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d best_score=%d timed_out=%d\n", len(all), best, timedOut)
	fmt.Printf("avg_per_run: score=%.1f ticks=%.1f speed_changes=%.1f peak_length=%.1f\n",
		avg(totalScore, len(all)), avg(totalTicks, len(all)), avg(totalSpeed, len(all)), avg(totalPeak, len(all)))
	fmt.Printf("phase_marker_avg_ticks: first_food=%s first_speedup=%s speed_floor=%s\n",
		avgTickString(foodTicks), avgTickString(speedTicks), avgTickString(floorTicks))
	fmt.Printf("end_causes: %s\n", engine.FormatCauseBreakdown(summaries))
	fmt.Printf("most_common_grade: %s\n", topTrait(grades))

	fmt.Println("\n=== Sessions ===")
	fmt.Print(engine.FormatSummaries(summaries))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

// topTrait returns the most frequent key with its count. Ties go to the
// alphabetically first key so output is stable.
func topTrait(counts map[string]int) string {
	if len(counts) == 0 {
		return ""
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	best := ""
	bestN := 0
	for _, k := range keys {
		if counts[k] > bestN {
			best = k
			bestN = counts[k]
		}
	}
	return fmt.Sprintf("%s(%d)", best, bestN)
}

func joinSet(s map[string]struct{}) string {
	if len(s) == 0 {
		return "none"
	}
	labels := make([]string, 0, len(s))
	for k := range s {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return strings.Join(labels, ",")
}
