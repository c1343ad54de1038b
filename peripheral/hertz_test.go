package peripheral

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestParseHertz(t *testing.T) {
	tests := []struct {
		in   string
		want Hertz
	}{
		{"48MHz", 48e6},
		{"48 mhz", 48e6},
		{"32.768kHz", 32768},
		{"1000000", 1e6},
		{"1GHz", 1e9},
		{"12Hz", 12},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseHertz(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %v, got %v", float64(tc.want), float64(got))
			}
		})
	}
}

func TestParseHertzInvalid(t *testing.T) {
	for _, in := range []string{"", "fast", "MHz", "-5MHz", "0"} {
		if _, err := ParseHertz(in); !errors.Is(err, ErrInvalidFrequency) {
			t.Errorf("%q: expected ErrInvalidFrequency, got %v", in, err)
		}
	}
}

func TestHertzString(t *testing.T) {
	tests := []struct {
		in   Hertz
		want string
	}{
		{48 * MHz, "48MHz"},
		{32768, "32.768kHz"},
		{12, "12Hz"},
		{1.5 * GHz, "1.5GHz"},
	}

	for _, tc := range tests {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestCycles(t *testing.T) {
	tests := []struct {
		f    Hertz
		d    time.Duration
		want int64
	}{
		{1 * MHz, time.Millisecond, 1000},
		{48 * MHz, time.Second, 48000000},
		{1 * MHz, 0, 0},
		{1 * MHz, 400 * time.Nanosecond, 0},
		{1 * MHz, 600 * time.Nanosecond, 1},
		{1 * GHz, time.Duration(math.MaxInt64), math.MaxInt64},
	}

	for _, tc := range tests {
		if got := tc.f.Cycles(tc.d); got != tc.want {
			t.Errorf("%v over %v: expected %d, got %d", tc.f, tc.d, tc.want, got)
		}
	}
}
