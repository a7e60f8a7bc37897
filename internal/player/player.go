// Package player queries external music players for the current track.
package player

import (
	"context"
	"time"
)

// Track is one snapshot of what the external player reports. A zero
// Track means "nothing playing" and is never an error.
type Track struct {
	Path     string
	Artist   string
	Title    string
	Album    string
	Duration time.Duration
	Position time.Duration
	Playing  bool
}

// Empty reports whether the snapshot carries no track at all.
func (t Track) Empty() bool {
	return t.Path == "" && t.Title == ""
}

// SameIdentity reports whether two snapshots refer to the same track.
// Duration is excluded: players report it late or jittery.
func (t Track) SameIdentity(o Track) bool {
	return t.Path == o.Path && t.Artist == o.Artist && t.Title == o.Title
}

// Provider reports the currently playing track. A provider that cannot
// reach its player returns an empty Track and no error; the error
// return is for unexpected failures worth surfacing.
type Provider interface {
	Name() string
	Now(ctx context.Context) (Track, error)
}

// Multi tries each provider in order and returns the first snapshot
// that reports a track.
type Multi struct {
	Providers []Provider
}

// Name implements Provider.
func (m Multi) Name() string { return "auto" }

// Now implements Provider. Provider errors are only returned when no
// provider yields a track.
func (m Multi) Now(ctx context.Context) (Track, error) {
	var lastErr error
	for _, p := range m.Providers {
		t, err := p.Now(ctx)
		if err != nil {
			lastErr = err
			continue
		}
		if !t.Empty() {
			return t, nil
		}
	}
	return Track{}, lastErr
}
