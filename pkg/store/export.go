package store

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON writes a run as an indented JSON metrics file. The file is a
// write-once artifact; an existing file at the path is replaced.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
