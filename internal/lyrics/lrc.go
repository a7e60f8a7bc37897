package lyrics

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/llehouerou/refrain/internal/timestamp"
)

// Regular expressions for the line-synced (LRC) format.
var (
	// First [mm:ss.ff] tag on a line; the fraction is optional.
	lrcTagRe = regexp.MustCompile(`\[(\d+:\d+(?:\.\d+)?)\]`)

	// Metadata tags like [ar:Artist Name].
	lrcMetaRe = regexp.MustCompile(`^\[([a-z]+):(.+)\]$`)
)

// ParseLRC parses line-synced lyrics: one [mm:ss.ff] tag per line, the
// rest of the line being display text. Only the first tag on a line is
// honored. Untagged lines are dropped; metadata tags ([ar:], [ti:],
// [al:]) fill the track header. Dropped lines are reported in the
// skipped list, never as an error; the error return is reserved for
// reader failure.
func ParseLRC(r io.Reader) (*Track, []Skipped, error) {
	track := &Track{}
	var skipped []Skipped

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}

		if meta := lrcMetaRe.FindStringSubmatch(strings.TrimSpace(raw)); meta != nil {
			switch meta[1] {
			case "ar":
				track.Artist = strings.TrimSpace(meta[2])
			case "ti":
				track.Title = strings.TrimSpace(meta[2])
			case "al":
				track.Album = strings.TrimSpace(meta[2])
			}
			continue
		}

		loc := lrcTagRe.FindStringSubmatchIndex(raw)
		if loc == nil {
			skipped = append(skipped, Skipped{lineNo, raw, "no timestamp tag"})
			continue
		}

		ts, err := timestamp.Parse(raw[loc[2]:loc[3]])
		if err != nil {
			skipped = append(skipped, Skipped{lineNo, raw, "malformed timestamp"})
			continue
		}

		// Everything after the closing bracket is the display text,
		// whitespace untouched.
		text := raw[loc[1]:]
		track.Lines = append(track.Lines, Line{
			Time:   ts,
			Text:   text,
			Marker: strings.TrimSpace(text) == "",
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, err
	}

	sortLines(track.Lines)
	return track, skipped, nil
}
