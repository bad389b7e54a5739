package tagalog

import (
	"fmt"
	"testing"
	"time"
)

type named string

func TestFormatMessage(t *testing.T) {
	cases := []struct {
		name    string
		message any
		want    string
	}{
		{"string", "plain", "plain"},
		{"tag", Tag("sym"), "sym"},
		{"named string", named("custom"), "custom"},
		{"bytes", []byte("raw"), "raw"},
		{"string slice", []string{"a", "b", "c"}, "[a, b, c]"},
		{"mixed slice", []any{"a", 1, true}, "[a, 1, true]"},
		{"array", [2]int{1, 2}, "[1, 2]"},
		{"empty slice", []string{}, "[]"},
		{"map", map[string]int{"b": 2, "a": 1}, "{a: 1, b: 2}"},
		{"tag keyed map", map[Tag]string{"x": "y"}, "{x: y}"},
		{"stringer items", []fmt.Stringer{time.Duration(0)}, "[0s]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := formatMessage(tc.message)
			if err != nil {
				t.Fatalf("formatMessage: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestRenderLine(t *testing.T) {
	cases := []struct {
		format string
		want   string
	}{
		{"$D [ $T ]  $M", "DATE [ tag ]  msg"},
		{"$M", "msg"},
		{"$X $T $$M", "$X tag $msg"},
		{"no placeholders", "no placeholders"},
		{"$d $t $m", "$d $t $m"},
	}
	for _, tc := range cases {
		got := renderLine(tc.format, "DATE", "tag", "msg")
		if got != tc.want {
			t.Errorf("renderLine(%q): expected %q, got %q", tc.format, tc.want, got)
		}
	}
}

func TestRenderLineDoesNotRescan(t *testing.T) {
	got := renderLine("$T: $M", "d", "$M", "costs $D")
	if got != "$M: costs $D" {
		t.Errorf("substituted text was expanded again: %q", got)
	}
}
