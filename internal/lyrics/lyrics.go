// Package lyrics provides the synced lyrics data model, the LRC and A2
// parsers, and position resolution over parsed tracks.
package lyrics

import (
	"sort"
	"time"
)

// Word is one word's active window within a word-synced line.
// Start <= End always holds after parsing.
type Word struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// Line is a single timestamped lyric line. Words is non-empty only for
// word-synced sources; when empty the line is a single highlightable
// unit. Marker flags a non-lyrical line such as an instrumental break.
type Line struct {
	Time   time.Duration
	Text   string
	Words  []Word
	Marker bool
}

// Track is a parsed lyric sheet with optional metadata, lines sorted
// ascending by Time. A Track is never mutated after parsing; a new
// track replaces it wholesale when the playing track changes.
type Track struct {
	Lines  []Line
	Title  string
	Artist string
	Album  string
}

// Skipped records a source line a parser dropped, so callers can log
// without the parse having failed.
type Skipped struct {
	LineNo int
	Text   string
	Reason string
}

// LineAt returns the index of the last line whose start time is at or
// before pos, or -1 if the track is empty or pos precedes the first
// line. Positions past the last line pin to the last line. Equal
// timestamps resolve to the highest qualifying index.
func (t *Track) LineAt(pos time.Duration) int {
	if t == nil || len(t.Lines) == 0 {
		return -1
	}
	return sort.Search(len(t.Lines), func(i int) bool {
		return t.Lines[i].Time > pos
	}) - 1
}

// WordAt returns the index of the last word whose start is at or before
// pos, or -1 for wordless lines or positions before the first word.
func (l Line) WordAt(pos time.Duration) int {
	if len(l.Words) == 0 {
		return -1
	}
	return sort.Search(len(l.Words), func(i int) bool {
		return l.Words[i].Start > pos
	}) - 1
}

// IsSynced reports whether the track carries real timing information.
// Plain-text sources parse with every line at time zero.
func (t *Track) IsSynced() bool {
	if t == nil {
		return false
	}
	for _, line := range t.Lines {
		if line.Time > 0 {
			return true
		}
	}
	return false
}

// sortLines repairs out-of-order sources. The sort is stable so lines
// sharing a timestamp keep their source order.
func sortLines(lines []Line) {
	if sort.SliceIsSorted(lines, func(i, j int) bool {
		return lines[i].Time < lines[j].Time
	}) {
		return
	}
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Time < lines[j].Time
	})
}
