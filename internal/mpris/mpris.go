//go:build linux

// Package mpris queries MPRIS media players over the session D-Bus.
package mpris

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/llehouerou/refrain/internal/player"
)

const (
	namePrefix  = "org.mpris.MediaPlayer2."
	objectPath  = "/org/mpris/MediaPlayer2"
	playerIface = "org.mpris.MediaPlayer2.Player"
	propsGet    = "org.freedesktop.DBus.Properties.Get"
)

// Provider reads the currently playing track from the first MPRIS
// player on the session bus, preferring one that is actually playing.
type Provider struct {
	conn *dbus.Conn
}

// New connects to the session bus.
func New() (*Provider, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, err
	}
	return &Provider{conn: conn}, nil
}

// Name implements player.Provider.
func (p *Provider) Name() string { return "mpris" }

// Now implements player.Provider. No MPRIS player on the bus reports
// an empty Track, not an error.
func (p *Provider) Now(ctx context.Context) (player.Track, error) {
	names, err := p.playerNames(ctx)
	if err != nil || len(names) == 0 {
		return player.Track{}, err
	}

	var first player.Track
	for i, name := range names {
		t, err := p.query(ctx, name)
		if err != nil {
			continue
		}
		if i == 0 {
			first = t
		}
		if t.Playing {
			return t, nil
		}
	}
	return first, nil
}

// playerNames lists MPRIS bus names, e.g. org.mpris.MediaPlayer2.cmus.
func (p *Provider) playerNames(ctx context.Context) ([]string, error) {
	var names []string
	obj := p.conn.Object("org.freedesktop.DBus", "/org/freedesktop/DBus")
	if err := obj.CallWithContext(ctx, "org.freedesktop.DBus.ListNames", 0).Store(&names); err != nil {
		return nil, err
	}

	var players []string
	for _, name := range names {
		if strings.HasPrefix(name, namePrefix) {
			players = append(players, name)
		}
	}
	return players, nil
}

// query reads one player's position, status, and metadata.
func (p *Provider) query(ctx context.Context, name string) (player.Track, error) {
	obj := p.conn.Object(name, objectPath)

	var metadata map[string]dbus.Variant
	if err := obj.CallWithContext(ctx, propsGet, 0, playerIface, "Metadata").Store(&metadata); err != nil {
		return player.Track{}, err
	}
	t := trackFromMetadata(metadata)

	var status string
	if err := obj.CallWithContext(ctx, propsGet, 0, playerIface, "PlaybackStatus").Store(&status); err == nil {
		t.Playing = status == "Playing"
	}

	var position int64
	if err := obj.CallWithContext(ctx, propsGet, 0, playerIface, "Position").Store(&position); err == nil {
		t.Position = time.Duration(position) * time.Microsecond
	}

	return t, nil
}

// trackFromMetadata maps MPRIS metadata onto a track snapshot.
func trackFromMetadata(md map[string]dbus.Variant) player.Track {
	var t player.Track

	if v, ok := md["xesam:url"]; ok {
		if s, ok := v.Value().(string); ok {
			t.Path = pathFromURL(s)
		}
	}
	if v, ok := md["xesam:title"]; ok {
		if s, ok := v.Value().(string); ok {
			t.Title = s
		}
	}
	if v, ok := md["xesam:artist"]; ok {
		t.Artist = firstString(v.Value())
	}
	if v, ok := md["xesam:album"]; ok {
		if s, ok := v.Value().(string); ok {
			t.Album = s
		}
	}
	if v, ok := md["mpris:length"]; ok {
		t.Duration = time.Duration(toInt64(v.Value())) * time.Microsecond
	}

	return t
}

// pathFromURL turns a file:// URL into a filesystem path; other
// schemes (streams) keep no path.
func pathFromURL(s string) string {
	u, err := url.Parse(s)
	if err != nil || u.Scheme != "file" {
		return ""
	}
	return u.Path
}

// firstString handles the xesam:artist field, which players report as
// either a string list or a plain string.
func firstString(v any) string {
	switch val := v.(type) {
	case []string:
		if len(val) > 0 {
			return val[0]
		}
	case []any:
		if len(val) > 0 {
			if s, ok := val[0].(string); ok {
				return s
			}
		}
	case string:
		return val
	}
	return ""
}

// toInt64 handles the mpris:length field, whose wire type varies by
// player.
func toInt64(v any) int64 {
	switch val := v.(type) {
	case int64:
		return val
	case uint64:
		return int64(val) //nolint:gosec // lengths are far below the overflow range
	case int32:
		return int64(val)
	case uint32:
		return int64(val)
	case int:
		return int64(val)
	case float64:
		return int64(val)
	}
	return 0
}
