package token

import (
	"strings"
	"testing"
)

func TestEstimateEmpty(t *testing.T) {
	if got := Estimate(""); got != 0 {
		t.Errorf("expected 0 for empty string, got %d", got)
	}
}

func TestEstimateRoundsUp(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"abcd", 1},
		{"abcde", 2},
		{"abcdefgh", 2},
		{strings.Repeat("x", 1388), 347},
	}
	for _, c := range cases {
		if got := Estimate(c.text); got != c.want {
			t.Errorf("Estimate(%d chars) = %d, want %d", len(c.text), got, c.want)
		}
	}
}

func TestEstimateCountsRunes(t *testing.T) {
	// 4 runes, 12 bytes: byte-based counting would return 3.
	if got := Estimate("日本語文"); got != 1 {
		t.Errorf("expected 1 token for 4 runes, got %d", got)
	}
}

func TestEstimateDeterministic(t *testing.T) {
	text := "What's the best chunking strategy for long technical documentation?"
	first := Estimate(text)
	for i := 0; i < 10; i++ {
		if got := Estimate(text); got != first {
			t.Fatalf("estimate changed between calls: %d vs %d", first, got)
		}
	}
}

func TestWordEstimate(t *testing.T) {
	counter := WordEstimate(1.3)
	if got := counter("one two three four"); got != 6 { // ceil(4 * 1.3)
		t.Errorf("expected 6, got %d", got)
	}
	if got := counter(""); got != 0 {
		t.Errorf("expected 0 for empty string, got %d", got)
	}
	if got := counter("   "); got != 0 {
		t.Errorf("expected 0 for whitespace, got %d", got)
	}
}
