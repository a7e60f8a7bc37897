package lyrics

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/adrg/xdg"

	"github.com/llehouerou/refrain/internal/lrclib"
)

// Source provides lyrics from local files, the cache, or the lrclib API,
// tried in that order.
type Source struct {
	client   *lrclib.Client
	cacheDir string
	extraDir string
	offline  bool
}

// NewSource creates a lyrics source. extraDir is an optional directory
// searched for "<title>_<artist>" lyric files in addition to the audio
// file's own directory; offline disables the lrclib API.
func NewSource(extraDir string, offline bool) *Source {
	return &Source{
		client:   lrclib.New(),
		cacheDir: filepath.Join(xdg.CacheHome, "refrain", "lyrics"),
		extraDir: extraDir,
		offline:  offline,
	}
}

// TrackInfo identifies the track to fetch lyrics for.
type TrackInfo struct {
	FilePath string // path to the audio file, for sibling lyric lookup
	Artist   string
	Title    string
	Album    string
	Duration time.Duration
}

// FetchResult is the outcome of a lyrics fetch. A missing track is not
// an error: Track is nil and Source is "not_found".
type FetchResult struct {
	Track   *Track
	Skipped []Skipped
	Source  string // "local", "cache", "api", or "not_found"
	Err     error
}

// Fetch retrieves lyrics using the priority order:
// 1. Lyric file next to the audio file (.lrc, .a2, .txt)
// 2. Configured lyrics directory
// 3. Cached .lrc file
// 4. lrclib API (result written back to the cache)
func (s *Source) Fetch(ctx context.Context, info TrackInfo) FetchResult {
	for _, path := range s.localCandidates(info) {
		if track, skipped, err := parseFile(path); err == nil && len(track.Lines) > 0 {
			return FetchResult{Track: track, Skipped: skipped, Source: "local"}
		}
	}

	// Cache and API lookups need an identity.
	if info.Artist == "" || info.Title == "" {
		return FetchResult{Source: "not_found"}
	}

	if track, skipped, err := parseFile(s.cachePath(info.Artist, info.Title)); err == nil && len(track.Lines) > 0 {
		return FetchResult{Track: track, Skipped: skipped, Source: "cache"}
	}

	if s.offline {
		return FetchResult{Source: "not_found"}
	}
	return s.fetchFromAPI(ctx, info)
}

// localCandidates lists lyric file paths to try before going online.
func (s *Source) localCandidates(info TrackInfo) []string {
	var paths []string

	if info.FilePath != "" {
		base := strings.TrimSuffix(info.FilePath, filepath.Ext(info.FilePath))
		paths = append(paths, base+".lrc", base+".a2", base+".txt")
	}

	if s.extraDir != "" && info.Title != "" {
		name := sanitizeFilename(info.Title) + "_" + sanitizeFilename(info.Artist)
		paths = append(paths,
			filepath.Join(s.extraDir, name+".lrc"),
			filepath.Join(s.extraDir, name+".a2"),
		)
	}

	return paths
}

// fetchFromAPI fetches lyrics from lrclib and caches synced results.
func (s *Source) fetchFromAPI(ctx context.Context, info TrackInfo) FetchResult {
	result, err := s.client.Get(ctx, info.Artist, info.Title, info.Duration)
	if err != nil {
		if errors.Is(err, lrclib.ErrNotFound) {
			return FetchResult{Source: "not_found"}
		}
		return FetchResult{Source: "not_found", Err: err}
	}

	switch {
	case result.HasSyncedLyrics():
		track, skipped, err := ParseLRC(strings.NewReader(result.SyncedLyrics))
		if err != nil || len(track.Lines) == 0 {
			return FetchResult{Source: "not_found"}
		}
		fillMetadata(track, result)
		_ = s.saveToCache(info.Artist, info.Title, result.SyncedLyrics)
		return FetchResult{Track: track, Skipped: skipped, Source: "api"}

	case result.HasPlainLyrics():
		track := parsePlain(strings.NewReader(result.PlainLyrics))
		if len(track.Lines) == 0 {
			return FetchResult{Source: "not_found"}
		}
		fillMetadata(track, result)
		return FetchResult{Track: track, Source: "api"}
	}

	return FetchResult{Source: "not_found"}
}

func fillMetadata(track *Track, result *lrclib.LyricsResult) {
	if track.Artist == "" {
		track.Artist = result.ArtistName
	}
	if track.Title == "" {
		track.Title = result.TrackName
	}
	if track.Album == "" {
		track.Album = result.AlbumName
	}
}

// parseFile parses a lyric file according to its extension: .a2 is
// word-synced, .txt plain text, anything else LRC.
func parseFile(path string) (*Track, []Skipped, error) {
	if path == "" {
		return nil, nil, os.ErrNotExist
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".a2":
		return ParseA2(f)
	case ".txt":
		return parsePlain(f), nil, nil
	default:
		return ParseLRC(f)
	}
}

// parsePlain turns unsynced text into a track with every line at time
// zero; the resolver then pins the first line and the view reports the
// lyrics as unsynced.
func parsePlain(r io.Reader) *Track {
	track := &Track{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			track.Lines = append(track.Lines, Line{Text: line})
		}
	}
	return track
}

// cachePath returns the cache file path for a track.
func (s *Source) cachePath(artist, title string) string {
	if s.cacheDir == "" {
		return ""
	}
	return filepath.Join(s.cacheDir, sanitizeFilename(artist), sanitizeFilename(title)+".lrc")
}

// saveToCache writes fetched LRC content through to the cache.
func (s *Source) saveToCache(artist, title, content string) error {
	path := s.cachePath(artist, title)
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o600)
}

// sanitizeFilename replaces characters that are problematic in
// filenames and bounds the length.
var invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

func sanitizeFilename(name string) string {
	name = invalidFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, " .")
	if len(name) > 100 {
		name = name[:100]
	}
	if name == "" {
		name = "_"
	}
	return name
}
