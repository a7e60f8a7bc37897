package lyrics

import (
	"strings"
	"testing"
	"time"
)

func TestParseA2_WordPairs(t *testing.T) {
	track, skipped, err := ParseA2(strings.NewReader("<00:01.00>Hi<00:01.50> <00:01.50>there<00:02.00>"))
	if err != nil {
		t.Fatalf("ParseA2 error: %v", err)
	}
	if len(skipped) != 0 {
		t.Errorf("len(skipped) = %d, want 0", len(skipped))
	}
	if len(track.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1", len(track.Lines))
	}

	line := track.Lines[0]
	if line.Time != time.Second {
		t.Errorf("Time = %v, want 1s", line.Time)
	}
	if line.Text != "Hi there" {
		t.Errorf("Text = %q, want %q", line.Text, "Hi there")
	}

	want := []Word{
		{time.Second, 1500 * time.Millisecond, "Hi"},
		{1500 * time.Millisecond, 2 * time.Second, "there"},
	}
	if len(line.Words) != len(want) {
		t.Fatalf("len(Words) = %d, want %d", len(line.Words), len(want))
	}
	for i, w := range want {
		if line.Words[i] != w {
			t.Errorf("Words[%d] = %+v, want %+v", i, line.Words[i], w)
		}
	}
}

func TestParseA2_WordTextTrimmed(t *testing.T) {
	track, _, err := ParseA2(strings.NewReader("<00:01.00> Hi <00:01.50>"))
	if err != nil {
		t.Fatalf("ParseA2 error: %v", err)
	}
	if got := track.Lines[0].Words[0].Text; got != "Hi" {
		t.Errorf("word text = %q, want %q", got, "Hi")
	}
}

func TestParseA2_PlainFallback(t *testing.T) {
	// A line with no word pairs is kept as plain text at time zero.
	a2 := "<00:01.00>Sung<00:02.00>\njust a comment line"

	track, _, err := ParseA2(strings.NewReader(a2))
	if err != nil {
		t.Fatalf("ParseA2 error: %v", err)
	}
	if len(track.Lines) != 2 {
		t.Fatalf("len(Lines) = %d, want 2", len(track.Lines))
	}

	plain := track.Lines[0] // sorts before the 1s line
	if plain.Time != 0 || plain.Text != "just a comment line" || len(plain.Words) != 0 {
		t.Errorf("plain line = %+v", plain)
	}
}

func TestParseA2_GapsAllowed(t *testing.T) {
	// Words within a line need not be contiguous.
	track, _, err := ParseA2(strings.NewReader("<00:01.00>far<00:01.20> <00:05.00>apart<00:05.50>"))
	if err != nil {
		t.Fatalf("ParseA2 error: %v", err)
	}
	words := track.Lines[0].Words
	if len(words) != 2 {
		t.Fatalf("len(Words) = %d, want 2", len(words))
	}
	if words[1].Start != 5*time.Second {
		t.Errorf("Words[1].Start = %v, want 5s", words[1].Start)
	}
}

func TestParseA2_EndClampedToStart(t *testing.T) {
	track, _, err := ParseA2(strings.NewReader("<00:02.00>odd<00:01.00>"))
	if err != nil {
		t.Fatalf("ParseA2 error: %v", err)
	}
	w := track.Lines[0].Words[0]
	if w.End < w.Start {
		t.Errorf("End %v < Start %v", w.End, w.Start)
	}
}

func TestParseA2_CrossLineSortRepair(t *testing.T) {
	a2 := "<00:10.00>Later<00:11.00>\n<00:02.00>Earlier<00:03.00>"

	track, _, err := ParseA2(strings.NewReader(a2))
	if err != nil {
		t.Fatalf("ParseA2 error: %v", err)
	}
	if track.Lines[0].Text != "Earlier" || track.Lines[1].Text != "Later" {
		t.Errorf("order = [%q %q], want [Earlier Later]",
			track.Lines[0].Text, track.Lines[1].Text)
	}
}

func TestParseA2_SourceOrderKeptWhenChronological(t *testing.T) {
	a2 := "<00:01.00>One<00:02.00>\n<00:02.00>Two<00:03.00>\n<00:02.00>Three<00:04.00>"

	track, _, err := ParseA2(strings.NewReader(a2))
	if err != nil {
		t.Fatalf("ParseA2 error: %v", err)
	}
	texts := make([]string, len(track.Lines))
	for i, l := range track.Lines {
		texts[i] = l.Text
	}
	if texts[0] != "One" || texts[1] != "Two" || texts[2] != "Three" {
		t.Errorf("texts = %v, want source order kept", texts)
	}
}
