//go:build !linux

package mpris

import (
	"context"

	"github.com/llehouerou/refrain/internal/player"
)

// Provider is a no-op on non-Linux platforms.
type Provider struct{}

// New returns a no-op provider on non-Linux platforms.
func New() (*Provider, error) {
	return &Provider{}, nil
}

// Name implements player.Provider.
func (p *Provider) Name() string { return "mpris" }

// Now implements player.Provider: never a track, never an error.
func (p *Provider) Now(_ context.Context) (player.Track, error) {
	return player.Track{}, nil
}
