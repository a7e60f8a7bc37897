package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde expands to home", "~/lyrics", filepath.Join(home, "lyrics")},
		{"absolute path unchanged", "/srv/lyrics", "/srv/lyrics"},
		{"relative path unchanged", "lyrics/dir", "lyrics/dir"},
		{"empty string unchanged", "", ""},
		{"tilde only", "~", home},
	}

	for _, tt := range tests {
		if got := expandPath(tt.input); got != tt.expected {
			t.Errorf("%s: expandPath(%q) = %q, want %q", tt.name, tt.input, got, tt.expected)
		}
	}
}

func TestConfig_PlayerName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "auto"},
		{"auto", "auto"},
		{"mpris", "mpris"},
		{"cmus", "cmus"},
		{"winamp", "auto"},
	}
	for _, tt := range tests {
		c := &Config{Player: tt.in}
		if got := c.PlayerName(); got != tt.want {
			t.Errorf("PlayerName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConfig_PollInterval(t *testing.T) {
	tests := []struct {
		ms   int
		want time.Duration
	}{
		{0, 100 * time.Millisecond},
		{-10, 100 * time.Millisecond},
		{10, 50 * time.Millisecond},
		{250, 250 * time.Millisecond},
		{10000, time.Second},
	}
	for _, tt := range tests {
		c := &Config{PollIntervalMs: tt.ms}
		if got := c.PollInterval(); got != tt.want {
			t.Errorf("PollInterval(%d) = %v, want %v", tt.ms, got, tt.want)
		}
	}
}

func TestConfig_FetchTimeout(t *testing.T) {
	tests := []struct {
		sec  int
		want time.Duration
	}{
		{0, 5 * time.Second},
		{2, 2 * time.Second},
		{120, 30 * time.Second},
	}
	for _, tt := range tests {
		c := &Config{FetchTimeoutSec: tt.sec}
		if got := c.FetchTimeout(); got != tt.want {
			t.Errorf("FetchTimeout(%d) = %v, want %v", tt.sec, got, tt.want)
		}
	}
}
