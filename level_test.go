package lantern_test

import (
	"testing"

	"lantern"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		input string
		want  lantern.Level
	}{
		{"trace", lantern.LevelTrace},
		{"debug", lantern.LevelDebug},
		{"info", lantern.LevelInfo},
		{"warn", lantern.LevelWarn},
		{"warning", lantern.LevelWarn},
		{"error", lantern.LevelError},
		{"critical", lantern.LevelCritical},
		{"fatal", lantern.LevelCritical},
		{"off", lantern.LevelOff},
		{"  INFO  ", lantern.LevelInfo},
		{"Error", lantern.LevelError},
		{"", lantern.LevelWarn},
		{"verbose", lantern.LevelWarn},
	}
	for _, tc := range cases {
		if got := lantern.ParseLevel(tc.input); got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestLevelOrdering(t *testing.T) {
	ordered := []lantern.Level{
		lantern.LevelTrace,
		lantern.LevelDebug,
		lantern.LevelInfo,
		lantern.LevelWarn,
		lantern.LevelError,
		lantern.LevelCritical,
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Fatalf("expected %v < %v", ordered[i-1], ordered[i])
		}
	}
	if lantern.LevelCritical >= lantern.LevelOff {
		t.Fatal("expected every severity to sort below Off")
	}
}

func TestLevelLabels(t *testing.T) {
	if got := lantern.LevelError.String(); got != "error" {
		t.Fatalf("String() = %q, want %q", got, "error")
	}
	if got := lantern.LevelError.Label(); got != "ERROR" {
		t.Fatalf("Label() = %q, want %q", got, "ERROR")
	}
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		input string
		want  lantern.Format
	}{
		{"kv", lantern.FormatKeyValue},
		{"keyvalue", lantern.FormatKeyValue},
		{"text", lantern.FormatKeyValue},
		{"json", lantern.FormatJSON},
		{"JSON", lantern.FormatJSON},
		{"json-pretty", lantern.FormatPrettyJSON},
		{"pretty", lantern.FormatPrettyJSON},
		{"", lantern.FormatKeyValue},
		{"yaml", lantern.FormatKeyValue},
	}
	for _, tc := range cases {
		if got := lantern.ParseFormat(tc.input); got != tc.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseOverflowPolicy(t *testing.T) {
	if got := lantern.ParseOverflowPolicy("drop-oldest"); got != lantern.OverflowDropOldest {
		t.Fatalf("ParseOverflowPolicy(drop-oldest) = %v", got)
	}
	if got := lantern.ParseOverflowPolicy("block"); got != lantern.OverflowBlock {
		t.Fatalf("ParseOverflowPolicy(block) = %v", got)
	}
	if got := lantern.ParseOverflowPolicy("whatever"); got != lantern.OverflowBlock {
		t.Fatalf("ParseOverflowPolicy(whatever) = %v, want block fallback", got)
	}
}
