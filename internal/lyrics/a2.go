package lyrics

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/llehouerou/refrain/internal/timestamp"
)

// Word pairs like <00:01.00>Hi<00:01.50>. Non-greedy so the closing tag
// of one word can be repeated as the opening tag of the next.
var a2WordRe = regexp.MustCompile(`<(\d+:\d+\.\d+)>(.*?)<(\d+:\d+\.\d+)>`)

// ParseA2 parses word-synced lyrics: each line carries zero or more
// <start>word<end> pairs. Word text is the substring strictly between
// the two tokens, trimmed of surrounding whitespace. A line's time is
// its first word's start; lines with no pairs fall back to plain text
// at time zero. Source order is kept unless timestamps regress across
// lines, in which case a stable sort repairs the track.
func ParseA2(r io.Reader) (*Track, []Skipped, error) {
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

		matches := a2WordRe.FindAllStringSubmatch(raw, -1)
		if len(matches) == 0 {
			track.Lines = append(track.Lines, Line{Text: strings.TrimSpace(raw)})
			continue
		}

		var words []Word
		var texts []string
		for _, m := range matches {
			start, err := timestamp.Parse(m[1])
			if err != nil {
				skipped = append(skipped, Skipped{lineNo, m[0], "malformed timestamp"})
				continue
			}
			end, err := timestamp.Parse(m[3])
			if err != nil {
				skipped = append(skipped, Skipped{lineNo, m[0], "malformed timestamp"})
				continue
			}
			if end < start {
				end = start
			}
			text := strings.TrimSpace(m[2])
			words = append(words, Word{Start: start, End: end, Text: text})
			if text != "" {
				texts = append(texts, text)
			}
		}
		if len(words) == 0 {
			skipped = append(skipped, Skipped{lineNo, raw, "no usable word pairs"})
			continue
		}

		track.Lines = append(track.Lines, Line{
			Time:   words[0].Start,
			Text:   strings.Join(texts, " "),
			Words:  words,
			Marker: len(texts) == 0,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, err
	}

	sortLines(track.Lines)
	return track, skipped, nil
}
