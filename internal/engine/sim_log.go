package engine

import (
	"fmt"
	"log"
	"strings"
)

// SimLogEntry is one recorded engine event.
type SimLogEntry struct {
	Tick     int
	Session  string  // short session id, or "--" before the first session
	Category string  // session, food, speed, input, move, store, board
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] 3f2a9c1e food     eaten            (120,100)
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-8s %-8s %-16s %s",
		e.Tick, e.Session, e.Category, e.Key, e.Value)
}

// SimLog collects structured engine events. It is unbounded and
// machine-readable; front ends mirror the tail of it into their own feeds.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
	echo    *log.Logger
}

// NewSimLog creates a SimLog. If verbose is true, per-tick head positions are
// recorded as well.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// SetEcho writes every subsequent entry to l as it is recorded. Nil disables.
func (sl *SimLog) SetEcho(l *log.Logger) {
	sl.echo = l
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, session, category, key, value string, numVal float64) {
	e := SimLogEntry{
		Tick:     tick,
		Session:  session,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	}
	sl.entries = append(sl.entries, e)
	if sl.echo != nil {
		sl.echo.Print(e.String())
	}
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, session, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, session, category, key, value, numVal)
}

// Len returns the number of recorded entries.
func (sl *SimLog) Len() int {
	return len(sl.entries)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Since returns entries recorded after the first n.
func (sl *SimLog) Since(n int) []SimLogEntry {
	if n < 0 {
		n = 0
	}
	if n >= len(sl.entries) {
		return nil
	}
	return sl.entries[n:]
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterSession returns entries for one session id.
func (sl *SimLog) FilterSession(session string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Session == session {
			out = append(out, e)
		}
	}
	return out
}

// Window returns entries whose tick lies in [fromTick, toTick]. Ticks restart
// with each session, so callers usually filter a single-session log.
func (sl *SimLog) Window(fromTick, toTick int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the newest entry with the given category and key.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	for i := len(sl.entries) - 1; i >= 0; i-- {
		if e := sl.entries[i]; e.Category == category && e.Key == key {
			return e, true
		}
	}
	return SimLogEntry{}, false
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log, one entry per line.
func (sl *SimLog) Format() string {
	return formatEntries(sl.entries)
}

// FormatWindow formats the entries of ticks [fromTick, toTick].
func (sl *SimLog) FormatWindow(fromTick, toTick int) string {
	return formatEntries(sl.Window(fromTick, toTick))
}

func formatEntries(entries []SimLogEntry) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
