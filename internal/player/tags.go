package player

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// FillFromTags fills missing artist/title/album from the audio file's
// embedded tags. Best effort: unreadable files leave the snapshot
// unchanged apart from a filename-derived title.
func FillFromTags(t Track) Track {
	if t.Path == "" {
		return t
	}

	if t.Artist == "" || t.Title == "" || t.Album == "" {
		if f, err := os.Open(t.Path); err == nil {
			if m, err := tag.ReadFrom(f); err == nil {
				if t.Artist == "" {
					t.Artist = m.Artist()
				}
				if t.Title == "" {
					t.Title = m.Title()
				}
				if t.Album == "" {
					t.Album = m.Album()
				}
			}
			f.Close()
		}
	}

	// Last resort: show the filename rather than nothing.
	if t.Title == "" {
		base := filepath.Base(t.Path)
		t.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return t
}
