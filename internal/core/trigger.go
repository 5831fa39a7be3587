package core

import (
	"regexp"
	"strings"
)

var (
	aiMention = regexp.MustCompile(`(?i)@ai`)
	aiCommand = regexp.MustCompile(`(?i)^/ai\s*`)
)

// HasAITrigger reports whether message content invokes the AI
// responder: a case-insensitive @ai mention anywhere, or a leading
// /ai command.
func HasAITrigger(content string) bool {
	lower := strings.ToLower(content)
	return strings.Contains(lower, "@ai") || strings.HasPrefix(lower, "/ai ")
}

// AIPrompt strips the invocation marker from the content. If nothing
// but the marker was present, the original content is returned so the
// responder always receives a non-empty prompt.
func AIPrompt(content string) string {
	prompt := aiMention.ReplaceAllString(content, "")
	prompt = aiCommand.ReplaceAllString(prompt, "")
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return content
	}
	return prompt
}
