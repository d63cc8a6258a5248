package lantern

import (
	"testing"
	"time"
)

func TestFormatPattern(t *testing.T) {
	ts := time.Date(2026, 3, 9, 14, 5, 7, 42*int(time.Millisecond), time.UTC)
	cases := []struct {
		pattern string
		want    string
	}{
		{"%v", "hello"},
		{"", "hello"},
		{"[%Y-%m-%d %H:%M:%S.%e] [%l] %v", "[2026-03-09 14:05:07.042] [warn] hello"},
		{"%L %v", "WARN hello"},
		{"%^%l%$ %v", "warn hello"},
		{"100%% %v", "100% hello"},
		{"%q %v", "%q hello"},
		{"trailing %", "trailing %"},
	}
	for _, tc := range cases {
		if got := formatPattern(tc.pattern, ts, LevelWarn, "hello"); got != tc.want {
			t.Errorf("formatPattern(%q) = %q, want %q", tc.pattern, got, tc.want)
		}
	}
}

func TestFormatPatternMillisecondPadding(t *testing.T) {
	cases := []struct {
		ms   int
		want string
	}{
		{5, "005"},
		{42, "042"},
		{999, "999"},
		{0, "000"},
	}
	for _, tc := range cases {
		ts := time.Date(2026, 1, 1, 0, 0, 0, tc.ms*int(time.Millisecond), time.UTC)
		if got := formatPattern("%e", ts, LevelInfo, ""); got != tc.want {
			t.Errorf("formatPattern(%%e) with %dms = %q, want %q", tc.ms, got, tc.want)
		}
	}
}
