package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Snake-Sense/internal/engine"
)

const (
	feedPanelWidth = 320
	feedMaxEntries = 60
	feedLineHeight = 14
)

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Tick     int
	Category string
	Message  string
}

// EventFeed is a ring buffer of recent engine events rendered on-screen.
type EventFeed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add appends an engine log entry to the feed.
func (f *EventFeed) Add(e engine.SimLogEntry) {
	f.entries[f.head] = FeedEntry{
		Tick:     e.Tick,
		Category: e.Category,
		Message:  fmt.Sprintf("%s %s", e.Key, e.Value),
	}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Len returns how many entries are held.
func (f *EventFeed) Len() int { return f.count }

// Recent returns entries in chronological order (oldest first).
func (f *EventFeed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

var categoryColors = map[string]color.RGBA{
	"session": {R: 46, G: 204, B: 113, A: 255},
	"food":    {R: 231, G: 76, B: 60, A: 255},
	"speed":   {R: 241, G: 196, B: 15, A: 255},
	"input":   {R: 52, G: 152, B: 219, A: 255},
	"store":   {R: 155, G: 89, B: 182, A: 255},
}

// Draw renders the feed as a translucent panel anchored at the right edge of
// the area starting at (x, y) with height h.
func (f *EventFeed) Draw(screen *ebiten.Image, x, y, h int) {
	px := float32(x)
	py := float32(y)
	vector.FillRect(screen, px, py, feedPanelWidth, float32(h), color.RGBA{R: 10, G: 12, B: 10, A: 210}, false)
	vector.StrokeLine(screen, px, py, px, py+float32(h), 1.0, color.RGBA{R: 50, G: 70, B: 50, A: 255}, false)

	vector.FillRect(screen, px, py, feedPanelWidth, 18, color.RGBA{R: 20, G: 30, B: 20, A: 255}, false)
	drawText(screen, "EVENTS", x+8, y+3, 1, colorText)
	vector.StrokeLine(screen, px, py+18, px+feedPanelWidth, py+18, 1.0, color.RGBA{R: 50, G: 80, B: 50, A: 200}, false)

	entries := f.Recent()
	maxVisible := (h - 24) / feedLineHeight
	if maxVisible < 0 {
		maxVisible = 0
	}
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	ly := y + 22
	for i, e := range entries {
		if i >= len(entries)-3 {
			vector.FillRect(screen, px+2, float32(ly), feedPanelWidth-4, feedLineHeight, color.RGBA{R: 30, G: 40, B: 30, A: 160}, false)
		}
		dot, ok := categoryColors[e.Category]
		if !ok {
			dot = color.RGBA{R: 120, G: 120, B: 120, A: 255}
		}
		vector.FillRect(screen, px+5, float32(ly+4), 3, 6, dot, false)
		drawText(screen, fmt.Sprintf("%4d %s", e.Tick, e.Message), x+12, ly+1, 1, colorText)
		ly += feedLineHeight
	}
}
