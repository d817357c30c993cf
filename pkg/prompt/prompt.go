// Package prompt loads and fingerprints system prompt text.
package prompt

import (
	"crypto/sha256"
	"fmt"
	"os"
	"strings"
)

// LoadFile reads a prompt file and trims surrounding whitespace.
func LoadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read prompt: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Hash returns the SHA-256 hex fingerprint of a prompt, used to identify
// which prompt a stored comparison run was computed from.
func Hash(text string) string {
	h := sha256.Sum256([]byte(text))
	return fmt.Sprintf("%x", h)
}
