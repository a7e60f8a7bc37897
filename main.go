package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/refrain/internal/config"
	"github.com/llehouerou/refrain/internal/errmsg"
	"github.com/llehouerou/refrain/internal/keymap"
	"github.com/llehouerou/refrain/internal/lyrics"
	"github.com/llehouerou/refrain/internal/mpris"
	"github.com/llehouerou/refrain/internal/player"
	"github.com/llehouerou/refrain/internal/ui/lyricview"
)

type tickMsg time.Time

// statusMsg carries one player poll result.
type statusMsg struct {
	track player.Track
	err   error
}

type model struct {
	cfg      *config.Config
	provider player.Provider
	view     lyricview.Model

	width  int
	height int

	playerErr string
}

func initialModel() (model, error) {
	cfg, err := config.Load()
	if err != nil {
		return model{}, fmt.Errorf("%s: %w", errmsg.OpConfigLoad, err)
	}

	provider, err := newProvider(cfg.PlayerName())
	if err != nil {
		return model{}, err
	}

	source := lyrics.NewSource(cfg.LyricsDir, cfg.Offline)

	return model{
		cfg:      cfg,
		provider: provider,
		view:     lyricview.New(source, cfg.FetchTimeout()),
	}, nil
}

// newProvider picks the player backend. "auto" tries MPRIS first and
// falls back to cmus per poll.
func newProvider(name string) (player.Provider, error) {
	switch name {
	case "cmus":
		return player.Cmus{}, nil
	case "mpris":
		p, err := mpris.New()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
		}
		return p, nil
	default:
		providers := []player.Provider{}
		if p, err := mpris.New(); err == nil {
			providers = append(providers, p)
		}
		providers = append(providers, player.Cmus{})
		return player.Multi{Providers: providers}, nil
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.queryCmd(), m.tickCmd())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if keymap.Default.Resolve(msg.String()) == keymap.ActionQuit {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return m, cmd

	case tickMsg:
		return m, tea.Batch(m.queryCmd(), m.tickCmd())

	case statusMsg:
		if msg.err != nil {
			m.playerErr = errmsg.Format(errmsg.OpPlayerQuery, msg.err)
		} else {
			m.playerErr = ""
		}
		var cmd tea.Cmd
		m.view, cmd = m.view.SetNowPlaying(msg.track)
		return m, cmd
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.playerErr != "" && m.view.State() == lyricview.StateIdle {
		return m.playerErr
	}
	return m.view.View()
}

// tickCmd schedules the next player poll.
func (m model) tickCmd() tea.Cmd {
	return tea.Tick(m.cfg.PollInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// queryCmd polls the player off the update loop.
func (m model) queryCmd() tea.Cmd {
	provider := m.provider
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		track, err := provider.Now(ctx)
		return statusMsg{track: track, err: err}
	}
}

func main() {
	m, err := initialModel()
	if err != nil {
		fmt.Printf("Error initializing: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
