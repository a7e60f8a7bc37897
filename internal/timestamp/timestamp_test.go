package timestamp

import (
	"errors"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		token string
		want  time.Duration
	}{
		{"00:00.00", 0},
		{"00:05.00", 5 * time.Second},
		{"0:05", 5 * time.Second},
		{"00:10", 10 * time.Second},
		{"02:30.50", 150*time.Second + 500*time.Millisecond},
		{"00:20.5", 20*time.Second + 500*time.Millisecond},
		{"03:07.123", 187*time.Second + 123*time.Millisecond},
		{"120:00.00", 120 * time.Minute}, // no upper bound on minutes
		{"01:59.99", time.Minute + 59*time.Second + 990*time.Millisecond},
	}

	for _, tt := range tests {
		got, err := Parse(tt.token)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.token, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestParse_Malformed(t *testing.T) {
	tokens := []string{
		"",
		"12",
		"abc",
		"1:2:3",
		"aa:10.00",
		"01:bb.00",
		"01:10.xx",
		"-1:10.00",
		"+1:10.00",
		"01:-5.00",
		":10.00",
		"01:",
	}

	for _, token := range tokens {
		if _, err := Parse(token); !errors.Is(err, ErrMalformed) {
			t.Errorf("Parse(%q) error = %v, want ErrMalformed", token, err)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00.00"},
		{5 * time.Second, "00:05.00"},
		{150*time.Second + 500*time.Millisecond, "02:30.50"},
		{time.Minute + 59*time.Second + 990*time.Millisecond, "01:59.99"},
		{120 * time.Minute, "120:00.00"},
		{-time.Second, "00:00.00"},
	}

	for _, tt := range tests {
		if got := Format(tt.d); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

// Centisecond-precision values must survive a format/parse round-trip.
func TestRoundTrip(t *testing.T) {
	durations := []time.Duration{
		0,
		5 * time.Second,
		150*time.Second + 500*time.Millisecond,
		3*time.Minute + 7*time.Second + 120*time.Millisecond,
		59*time.Minute + 59*time.Second + 990*time.Millisecond,
	}

	for _, d := range durations {
		got, err := Parse(Format(d))
		if err != nil {
			t.Errorf("Parse(Format(%v)) error: %v", d, err)
			continue
		}
		if diff := got - d; diff < -time.Nanosecond || diff > time.Nanosecond {
			t.Errorf("round-trip of %v = %v", d, got)
		}
	}
}
