package envx_test

import (
	"testing"

	"lantern/internal/envx"
)

func TestString(t *testing.T) {
	t.Setenv("ENVX_TEST_STR", "value")
	if got := envx.String("ENVX_TEST_STR", "def"); got != "value" {
		t.Fatalf("String = %q", got)
	}
	if got := envx.String("ENVX_TEST_UNSET", "def"); got != "def" {
		t.Fatalf("String default = %q", got)
	}
}

func TestBool(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"YES", true},
		{"on", true},
		{"0", false},
		{"false", false},
		{"banana", false},
	}
	for _, tc := range cases {
		t.Setenv("ENVX_TEST_BOOL", tc.value)
		if got := envx.Bool("ENVX_TEST_BOOL", !tc.want); got != tc.want {
			t.Errorf("Bool(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
	if !envx.Bool("ENVX_TEST_UNSET", true) {
		t.Fatal("unset key must return the default")
	}
}

func TestInt(t *testing.T) {
	t.Setenv("ENVX_TEST_INT", "42")
	if got := envx.Int("ENVX_TEST_INT", 7); got != 42 {
		t.Fatalf("Int = %d", got)
	}
	t.Setenv("ENVX_TEST_INT", "not-a-number")
	if got := envx.Int("ENVX_TEST_INT", 7); got != 7 {
		t.Fatalf("Int fallback = %d", got)
	}
	if got := envx.Int("ENVX_TEST_UNSET", 7); got != 7 {
		t.Fatalf("Int default = %d", got)
	}
}
