package lyricview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/refrain/internal/lyrics"
	"github.com/llehouerou/refrain/internal/ui/render"
	"github.com/llehouerou/refrain/internal/viewport"
)

var (
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	normalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// View renders the visible window of lyric lines plus the status bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var body string
	switch m.state {
	case StateIdle:
		body = m.renderPlaceholder("Nothing playing")
	case StateLoading:
		body = m.renderPlaceholder(m.spin.View() + " Loading lyrics…")
	case StateNotFound:
		body = m.renderPlaceholder("No lyrics found")
	case StateLoaded:
		body = m.renderLyrics()
	}

	return body + m.statusBar()
}

// renderPlaceholder centers a message vertically, with the track info
// underneath when one is known.
func (m Model) renderPlaceholder(msg string) string {
	rows := m.lyricRows()
	center := rows / 2

	var b strings.Builder
	for i := range rows {
		switch {
		case i == center:
			b.WriteString(render.Center(dimStyle.Render(msg), m.width))
		case i == center+1 && !m.now.Empty():
			info := render.Truncate(m.trackLabel(), m.width-2)
			b.WriteString(render.Center(dimStyle.Render(info), m.width))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Model) renderLyrics() string {
	rows := m.lyricRows()
	trackLen := len(m.track.Lines)
	start, highlight := viewport.Window(trackLen, m.current, rows, m.scroll)

	var b strings.Builder
	for row := range rows {
		i := start + row
		if i < trackLen {
			b.WriteString(render.Center(m.renderLine(m.track.Lines[i], i == highlight), m.width))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Model) renderLine(line lyrics.Line, active bool) string {
	if line.Marker {
		return dimStyle.Render("♪")
	}
	if active && len(line.Words) > 0 {
		return m.renderActiveWords(line)
	}

	text := render.Truncate(line.Text, max(m.width-2, 1))
	if active {
		return activeStyle.Render(text)
	}
	return normalStyle.Render(text)
}

// renderActiveWords highlights the words already sung within the
// active word-synced line.
func (m Model) renderActiveWords(line lyrics.Line) string {
	sung := line.WordAt(m.now.Position)

	parts := make([]string, 0, len(line.Words))
	for i, w := range line.Words {
		if w.Text == "" {
			continue
		}
		text := render.Sanitize(w.Text)
		if i <= sung {
			parts = append(parts, activeStyle.Render(text))
		} else {
			parts = append(parts, normalStyle.Render(text))
		}
	}
	return strings.Join(parts, " ")
}

// statusBar is the bottom row: track identity on the left, playback
// and sync details on the right.
func (m Model) statusBar() string {
	left := " " + render.Truncate(m.trackLabel(), m.width/2)

	var parts []string
	if m.errText != "" {
		parts = append(parts, errorStyle.Render(render.Truncate(m.errText, m.width/3)))
	}
	if m.skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", m.skipped))
	}
	if m.origin != "" {
		parts = append(parts, m.origin)
	}
	if m.state == StateLoaded {
		parts = append(parts, m.syncLabel())
	}
	if m.now.Duration > 0 {
		parts = append(parts, fmt.Sprintf("%s / %s",
			formatDuration(m.now.Position),
			formatDuration(m.now.Duration)))
	}
	right := strings.Join(parts, " · ") + " "

	return dimStyle.Render(render.Row(left, right, m.width))
}

func (m Model) trackLabel() string {
	switch {
	case m.now.Artist != "" && m.now.Title != "":
		return m.now.Artist + " - " + m.now.Title
	case m.now.Title != "":
		return m.now.Title
	default:
		return ""
	}
}

func (m Model) syncLabel() string {
	switch {
	case !m.track.IsSynced():
		return "unsynced"
	case m.scroll.Manual:
		return "manual · c to sync"
	default:
		return "synced"
	}
}

// formatDuration formats a duration as m:ss.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", d/time.Minute, (d%time.Minute)/time.Second)
}
