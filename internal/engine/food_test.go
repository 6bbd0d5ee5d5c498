package engine

import (
	"math/rand"
	"testing"
)

func TestPlaceFood_RejectsOccupiedSamples(t *testing.T) {
	snake := []Cell{{0, 0}, {20, 0}}
	r := &ScriptedRand{Values: []int{0, 0, 1, 0, 2, 3}}
	got, ok := placeFood(r, snake, 20, 100, 100)
	if !ok || got != (Cell{40, 60}) {
		t.Fatalf("placeFood = %s ok=%v, want (40,60)", got, ok)
	}
	if r.Calls != 6 {
		t.Fatalf("rand calls = %d, want 6", r.Calls)
	}
}

func TestPlaceFood_FallsBackToFreeCell(t *testing.T) {
	// A source stuck on 0 keeps hitting the occupied corner.
	got, ok := placeFood(&ScriptedRand{}, []Cell{{0, 0}}, 20, 100, 100)
	if !ok || got != (Cell{20, 0}) {
		t.Fatalf("placeFood = %s ok=%v, want (20,0)", got, ok)
	}
}

func TestPlaceFood_FullBoard(t *testing.T) {
	var snake []Cell
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			snake = append(snake, Cell{x * 20, y * 20})
		}
	}
	if _, ok := placeFood(&ScriptedRand{}, snake, 20, 100, 100); ok {
		t.Fatal("placeFood should fail when every sampleable cell is taken")
	}
}

func TestPlaceFood_AlignedAndInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42)) // #nosec G404 -- test
	seen := map[Cell]bool{}
	for i := 0; i < 2000; i++ {
		c, ok := placeFood(rng, nil, 20, 200, 200)
		if !ok {
			t.Fatal("empty board reported full")
		}
		if c.X%20 != 0 || c.Y%20 != 0 {
			t.Fatalf("food %s not grid aligned", c)
		}
		if c.X < 0 || c.Y < 0 || c.X > 160 || c.Y > 160 {
			t.Fatalf("food %s outside sampled range", c)
		}
		seen[c] = true
	}
	if len(seen) != 81 {
		t.Fatalf("sampled %d distinct cells, want 81", len(seen))
	}
}

func TestPlaceFood_TinyBoard(t *testing.T) {
	if foodColumns(20, 20) != 1 || foodRows(10, 20) != 1 {
		t.Fatal("sampling range must be at least one cell")
	}
}

func TestTick_FoodNeverOnSnake(t *testing.T) {
	ts := NewTestSim(WithBoard(20, 200, 200), WithSeed(3), WithAutopilot())
	ts.Start()
	for i := 0; i < 400 && ts.Engine.Running(); i++ {
		ts.Step()
		for _, c := range ts.Engine.Snake() {
			if ts.Engine.Running() && c == ts.Engine.Food() {
				t.Fatalf("tick %d: food %s on snake", ts.Engine.Ticks(), c)
			}
		}
	}
}
