package player

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Cmus queries cmus through cmus-remote -Q.
type Cmus struct{}

// Name implements Provider.
func (Cmus) Name() string { return "cmus" }

// Now implements Provider. A missing or stopped cmus reports an empty
// Track, not an error.
func (Cmus) Now(ctx context.Context) (Track, error) {
	out, err := exec.CommandContext(ctx, "cmus-remote", "-Q").Output()
	if err != nil {
		return Track{}, nil //nolint:nilerr // cmus not running means nothing playing
	}
	return parseCmusStatus(string(out)), nil
}

// parseCmusStatus parses cmus-remote -Q output lines such as
//
//	status playing
//	file /music/album/track.flac
//	duration 215
//	position 42
//	tag artist Some Artist
//	tag title Some Title
func parseCmusStatus(out string) Track {
	var t Track
	for line := range strings.SplitSeq(out, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "status "):
			t.Playing = strings.TrimPrefix(line, "status ") == "playing"
		case strings.HasPrefix(line, "file "):
			t.Path = strings.TrimPrefix(line, "file ")
		case strings.HasPrefix(line, "duration "):
			t.Duration = parseSeconds(strings.TrimPrefix(line, "duration "))
		case strings.HasPrefix(line, "position "):
			t.Position = parseSeconds(strings.TrimPrefix(line, "position "))
		case strings.HasPrefix(line, "tag artist "):
			t.Artist = strings.TrimPrefix(line, "tag artist ")
		case strings.HasPrefix(line, "tag title "):
			t.Title = strings.TrimPrefix(line, "tag title ")
		case strings.HasPrefix(line, "tag album "):
			t.Album = strings.TrimPrefix(line, "tag album ")
		}
	}
	return t
}

func parseSeconds(s string) time.Duration {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}
