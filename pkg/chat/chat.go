// Package chat defines the narrow chat-completion interface the demo
// commands inject. Real and mock clients alike are just a function from
// role-tagged messages to a response text.
package chat

import (
	"context"
	"fmt"

	"github.com/bakeoff-ai/bakeoff/pkg/models"
)

// CompletionFunc maps a list of role-tagged messages to a response text.
type CompletionFunc func(ctx context.Context, messages []models.ChatMessage) (string, error)

// SystemThenUser builds the traditional request shape: the system prompt is
// resent ahead of the user query.
func SystemThenUser(systemPrompt, userQuery string) []models.ChatMessage {
	return []models.ChatMessage{
		{Role: models.RoleSystem, Content: systemPrompt},
		{Role: models.RoleUser, Content: userQuery},
	}
}

// UserOnly builds the baked request shape: the system prompt lives in the
// model weights, so only the user query is sent.
func UserOnly(userQuery string) []models.ChatMessage {
	return []models.ChatMessage{
		{Role: models.RoleUser, Content: userQuery},
	}
}

// Mock returns a CompletionFunc that answers from canned responses keyed by
// the last user message, falling back to a generic acknowledgement. It never
// performs I/O.
func Mock(responses map[string]string) CompletionFunc {
	return func(ctx context.Context, messages []models.ChatMessage) (string, error) {
		if len(messages) == 0 {
			return "", fmt.Errorf("no messages")
		}
		last := messages[len(messages)-1]
		if resp, ok := responses[last.Content]; ok {
			return resp, nil
		}
		return fmt.Sprintf("[mock] As a retrieval expert: regarding %q, start with your evaluation setup and iterate from there.", last.Content), nil
	}
}
