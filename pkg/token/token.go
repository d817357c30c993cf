// Package token provides deterministic token count estimation for prompt
// text. The heuristics here approximate BPE tokenizers without pulling in a
// real tokenizer; identical input always yields an identical count.
package token

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Counter estimates the token count of a text. Implementations must be
// deterministic and return a non-negative count.
type Counter func(text string) int

// charsPerToken is the rough characters-per-token ratio of common BPE
// tokenizers (~4 chars per token for English text).
const charsPerToken = 4

// Estimate returns ceil(runes / 4). Rune count rather than byte count keeps
// multi-byte text from inflating the estimate. The empty string estimates
// to zero.
func Estimate(text string) int {
	if text == "" {
		return 0
	}
	runes := utf8.RuneCountInString(text)
	return (runes + charsPerToken - 1) / charsPerToken
}

// WordEstimate returns a Counter that scales whole-word counts by
// tokensPerWord, rounded up. Useful for models whose tokenizers track word
// boundaries more closely than character counts.
func WordEstimate(tokensPerWord float64) Counter {
	return func(text string) int {
		words := len(strings.Fields(text))
		if words == 0 {
			return 0
		}
		return int(math.Ceil(float64(words) * tokensPerWord))
	}
}
