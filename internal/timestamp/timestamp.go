// Package timestamp converts between lyric time tags and durations.
//
// Tags use the mm:ss.ff form found in LRC and A2 lyric files: minutes,
// a colon, seconds, and an optional fractional part of any precision.
package timestamp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformed reports a token that does not match the mm:ss.ff pattern
// or whose parts are not numeric.
var ErrMalformed = errors.New("malformed timestamp")

// Parse converts a token like "02:30.50" into minutes*60 + seconds.
// Integer-second inputs convert exactly; fractional digits beyond
// nanosecond precision are dropped.
func Parse(token string) (time.Duration, error) {
	mm, rest, ok := strings.Cut(token, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, token)
	}

	minutes, err := strconv.ParseUint(mm, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, token)
	}

	sec, frac, _ := strings.Cut(rest, ".")
	seconds, err := strconv.ParseUint(sec, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, token)
	}

	d := time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second

	if frac != "" {
		if len(frac) > 9 {
			frac = frac[:9]
		}
		n, err := strconv.ParseUint(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformed, token)
		}
		// Scale the digits up to nanoseconds: ".5" is 500ms, ".500" too.
		nanos := n
		for range 9 - len(frac) {
			nanos *= 10
		}
		d += time.Duration(nanos)
	}

	return d, nil
}

// Format renders a duration as an mm:ss.cc tag body with centisecond
// precision, e.g. "02:30.50". Negative durations render as zero.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(10 * time.Millisecond)
	minutes := d / time.Minute
	centis := (d - minutes*time.Minute) / (10 * time.Millisecond)
	return fmt.Sprintf("%02d:%02d.%02d", minutes, centis/100, centis%100)
}
