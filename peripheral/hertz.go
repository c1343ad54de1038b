package peripheral

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Hertz is a frequency.
type Hertz float64

const (
	Hz  Hertz = 1
	KHz Hertz = 1e3
	MHz Hertz = 1e6
	GHz Hertz = 1e9
)

var units = []struct {
	suffix string
	scale  Hertz
}{
	{"ghz", GHz},
	{"mhz", MHz},
	{"khz", KHz},
	{"hz", Hz},
}

// ParseHertz parses frequencies such as "48MHz", "32.768 kHz" or "1000000".
// Unit suffixes are case insensitive.
func ParseHertz(s string) (Hertz, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	scale := Hz
	for _, unit := range units {
		if strings.HasSuffix(str, unit.suffix) {
			str = strings.TrimSpace(strings.TrimSuffix(str, unit.suffix))
			scale = unit.scale
			break
		}
	}

	value, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFrequency, s)
	}

	f := Hertz(value) * scale
	if f <= 0 || math.IsInf(float64(f), 0) || math.IsNaN(float64(f)) {
		return 0, fmt.Errorf("%w: %q must be positive", ErrInvalidFrequency, s)
	}
	return f, nil
}

func (f Hertz) String() string {
	for _, unit := range units {
		if f >= unit.scale {
			return strconv.FormatFloat(float64(f/unit.scale), 'f', -1, 64) + displayUnit(unit.scale)
		}
	}
	return strconv.FormatFloat(float64(f), 'f', -1, 64) + "Hz"
}

// Cycles returns the number of whole periods of f that fit in d, rounded to
// the nearest cycle.
func (f Hertz) Cycles(d time.Duration) int64 {
	cycles := math.Round(float64(f) * d.Seconds())
	switch {
	case cycles >= math.MaxInt64:
		return math.MaxInt64
	case cycles <= math.MinInt64:
		return math.MinInt64
	}
	return int64(cycles)
}

func displayUnit(scale Hertz) string {
	switch scale {
	case GHz:
		return "GHz"
	case MHz:
		return "MHz"
	case KHz:
		return "kHz"
	}
	return "Hz"
}
