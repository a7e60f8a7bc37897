// Package viewport computes which window of lyric lines is visible.
//
// In follow mode the window centers the active line; manual scrolling
// decouples the window from playback until the user jumps back.
package viewport

// reservedRows is the slack kept when clamping a manual offset: one
// status row plus one boundary row.
const reservedRows = 2

// State is the manual-scroll override. It is owned by the input layer
// and read by Window each tick; nothing reverts Manual automatically,
// only Reset does.
type State struct {
	Offset int
	Manual bool
}

// ScrollBy enters manual mode and moves the offset by delta lines,
// clamped to the valid range for the given track and viewport.
func (s *State) ScrollBy(delta, trackLen, rows int) {
	s.Manual = true
	s.Offset = clamp(s.Offset+delta, 0, MaxOffset(trackLen, rows))
}

// Top enters manual mode at the first line.
func (s *State) Top() {
	s.Manual = true
	s.Offset = 0
}

// Bottom enters manual mode at the largest allowed offset.
func (s *State) Bottom(trackLen, rows int) {
	s.Manual = true
	s.Offset = MaxOffset(trackLen, rows)
}

// Reset returns to follow mode.
func (s *State) Reset() {
	s.Manual = false
	s.Offset = 0
}

// MaxOffset is the largest manual offset: the track length less the
// viewport rows, plus the reserved slack.
func MaxOffset(trackLen, rows int) int {
	return max(0, trackLen-rows+reservedRows)
}

// Window returns the first visible line and the line to highlight for
// a track of trackLen lines shown in rows rows. The highlight is the
// active line in both modes; a negative active means no line is live
// yet. start is always within [0, trackLen-1] for non-empty tracks.
func Window(trackLen, active, rows int, st State) (start, highlight int) {
	if trackLen == 0 {
		return 0, active
	}

	if st.Manual {
		start = clamp(st.Offset, 0, MaxOffset(trackLen, rows))
	} else {
		start = max(0, active-rows/2)
	}
	return min(start, trackLen-1), active
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
