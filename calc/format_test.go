package calc

import "testing"

func TestFormatResult(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{4.0, "4"},
		{4.5, "4.5"},
		{4.50, "4.5"},
		{-2, "-2"},
		{0.25, "0.25"},
		{1000000, "1000000"},
		{1.0 / 3.0 * 3.0, "1"},
	}

	for _, tc := range cases {
		if got := formatResult(tc.in); got != tc.want {
			t.Errorf("formatResult(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatResultTrimsFixedPointSuffixes(t *testing.T) {
	// The suffix pass is textual: it only touches exact-zero tails.
	cases := []struct {
		in   string
		want string
	}{
		{"4.00", "4"},
		{"4.0", "4"},
		{"4.50", "4.50"},
		{"40", "40"},
	}
	for _, tc := range cases {
		if got := trimZeroSuffix(tc.in); got != tc.want {
			t.Errorf("trimZeroSuffix(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
