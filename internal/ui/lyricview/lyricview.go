// Package lyricview displays synced lyrics for the playing track.
package lyricview

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/refrain/internal/errmsg"
	"github.com/llehouerou/refrain/internal/keymap"
	"github.com/llehouerou/refrain/internal/lyrics"
	"github.com/llehouerou/refrain/internal/player"
	"github.com/llehouerou/refrain/internal/viewport"
)

// State is the display state of the lyric view.
type State int

const (
	StateIdle State = iota // no player, or nothing playing
	StateLoading
	StateLoaded
	StateNotFound
)

// FetchedMsg is sent when a lyrics fetch finishes.
type FetchedMsg struct {
	ID     player.Track // identity snapshot the fetch was started for
	Result lyrics.FetchResult
}

// Model holds the lyric view state.
type Model struct {
	source       *lyrics.Source
	fetchTimeout time.Duration

	width  int
	height int

	state   State
	spin    spinner.Model
	errText string

	// rawID is the provider snapshot as reported, kept for identity
	// comparison; now is the display snapshot with tag-filled fields.
	rawID player.Track
	now   player.Track

	track   *lyrics.Track
	skipped int
	origin  string // "local", "cache", or "api"

	current int // active line index, -1 before the first line
	scroll  viewport.State
}

// New creates a lyric view backed by the given source.
func New(source *lyrics.Source, fetchTimeout time.Duration) Model {
	return Model{
		source:       source,
		fetchTimeout: fetchTimeout,
		spin:         spinner.New(spinner.WithSpinner(spinner.Dot)),
		current:      -1,
	}
}

// Init implements tea.Model conventions; the view is driven from the
// outside and starts idle.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles keys, fetch results, and spinner ticks.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case FetchedMsg:
		return m.handleFetched(msg)
	case spinner.TickMsg:
		if m.state == StateLoading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// SetNowPlaying feeds one provider snapshot into the view. A changed
// track identity resets the view and starts an asynchronous fetch;
// otherwise only the playback position advances.
func (m Model) SetNowPlaying(raw player.Track) (Model, tea.Cmd) {
	if raw.Empty() {
		m.rawID = raw
		m.now = raw
		m.track = nil
		m.current = -1
		m.scroll.Reset()
		m.state = StateIdle
		return m, nil
	}

	if !raw.SameIdentity(m.rawID) {
		m.rawID = raw
		m.now = player.FillFromTags(raw)
		m.track = nil
		m.skipped = 0
		m.origin = ""
		m.errText = ""
		m.current = -1
		m.scroll.Reset()
		m.state = StateLoading
		return m, tea.Batch(m.spin.Tick, m.fetchCmd())
	}

	m.now.Position = raw.Position
	m.now.Duration = raw.Duration
	m.now.Playing = raw.Playing
	m.current = m.track.LineAt(raw.Position)
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	trackLen := m.trackLen()
	rows := m.lyricRows()

	switch keymap.Default.Resolve(msg.String()) {
	case keymap.ActionScrollDown:
		m.enterManual(rows)
		m.scroll.ScrollBy(1, trackLen, rows)
	case keymap.ActionScrollUp:
		m.enterManual(rows)
		m.scroll.ScrollBy(-1, trackLen, rows)
	case keymap.ActionPageDown:
		m.enterManual(rows)
		m.scroll.ScrollBy(rows, trackLen, rows)
	case keymap.ActionPageUp:
		m.enterManual(rows)
		m.scroll.ScrollBy(-rows, trackLen, rows)
	case keymap.ActionTop:
		m.scroll.Top()
	case keymap.ActionBottom:
		m.scroll.Bottom(trackLen, rows)
	case keymap.ActionFollow:
		// Jump back to now: follow mode re-centers the active line.
		m.scroll.Reset()
	}
	return m, nil
}

// enterManual seeds the manual offset from the current window so the
// first scroll step moves one line instead of jumping.
func (m *Model) enterManual(rows int) {
	if m.scroll.Manual {
		return
	}
	start, _ := viewport.Window(m.trackLen(), m.current, rows, m.scroll)
	m.scroll = viewport.State{Offset: start, Manual: true}
}

func (m Model) handleFetched(msg FetchedMsg) (Model, tea.Cmd) {
	// Ignore stale results from a previous track.
	if !msg.ID.SameIdentity(m.rawID) {
		return m, nil
	}

	if msg.Result.Err != nil {
		m.errText = errmsg.Format(errmsg.OpLyricsFetch, msg.Result.Err)
	}
	if msg.Result.Track == nil || len(msg.Result.Track.Lines) == 0 {
		m.state = StateNotFound
		return m, nil
	}

	m.track = msg.Result.Track
	m.skipped = len(msg.Result.Skipped)
	m.origin = msg.Result.Source
	m.state = StateLoaded
	m.current = m.track.LineAt(m.now.Position)
	m.scroll.Reset()
	return m, nil
}

// fetchCmd starts a bounded, off-tick lyrics fetch for the current
// track identity.
func (m Model) fetchCmd() tea.Cmd {
	source := m.source
	timeout := m.fetchTimeout
	id := m.rawID
	info := lyrics.TrackInfo{
		FilePath: m.now.Path,
		Artist:   m.now.Artist,
		Title:    m.now.Title,
		Album:    m.now.Album,
		Duration: m.now.Duration,
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return FetchedMsg{ID: id, Result: source.Fetch(ctx, info)}
	}
}

// State returns the current display state.
func (m Model) State() State {
	return m.state
}

// ActiveLine returns the resolved active line index.
func (m Model) ActiveLine() int {
	return m.current
}

// ManualScroll reports whether the user detached the window from
// playback.
func (m Model) ManualScroll() bool {
	return m.scroll.Manual
}

func (m Model) trackLen() int {
	if m.track == nil {
		return 0
	}
	return len(m.track.Lines)
}

// lyricRows is the number of rows available for lyric lines; the last
// row holds the status bar.
func (m Model) lyricRows() int {
	return max(m.height-1, 1)
}
