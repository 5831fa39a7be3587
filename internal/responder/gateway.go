// Package responder integrates the external AI text-completion
// provider. Provider failures never leave this package: callers always
// get a reply string, at worst the fixed fallback apology.
package responder

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/relaychat/relaychat-server/internal/core"
)

// Chat roles understood by the completion provider.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// FallbackReply is what room participants see when the provider fails.
const FallbackReply = "Sorry, I encountered an error processing your request. Please try again."

const systemPrompt = "You are a helpful AI assistant in a chat room. Be friendly, concise, and helpful. " +
	"You can help with coding questions, general knowledge, and casual conversation. " +
	"Keep responses under 200 words unless more detail is specifically requested."

// ChatMessage is one role-tagged entry of the provider transcript.
type ChatMessage struct {
	Role    string
	Content string
}

// CompletionClient is the raw provider call. It may block for a full
// network round trip and is the only place a provider error surfaces.
type CompletionClient interface {
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}

// Gateway maps room history into a provider transcript and absorbs
// provider failures.
type Gateway struct {
	client CompletionClient
	log    *zerolog.Logger
}

// NewGateway builds a gateway around a completion client.
func NewGateway(client CompletionClient, logger *zerolog.Logger) *Gateway {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Gateway{client: client, log: logger}
}

// Reply implements core.Responder. The transcript is the recent room
// history, oldest first; prior AI entries take the assistant role and
// everything else the user role, each prefixed with the speaker so the
// model can follow who said what. The prompt is appended last.
func (g *Gateway) Reply(ctx context.Context, prompt string, transcript []core.Message) string {
	messages := make([]ChatMessage, 0, len(transcript)+2)
	messages = append(messages, ChatMessage{Role: RoleSystem, Content: systemPrompt})
	for _, m := range transcript {
		role := RoleUser
		if m.Kind == core.MessageKindAI {
			role = RoleAssistant
		}
		messages = append(messages, ChatMessage{Role: role, Content: m.Username + ": " + m.Content})
	}
	messages = append(messages, ChatMessage{Role: RoleUser, Content: prompt})

	reply, err := g.client.Complete(ctx, messages)
	if err != nil {
		g.log.Warn().Err(err).Msg("completion provider failed")
		return FallbackReply
	}
	if strings.TrimSpace(reply) == "" {
		g.log.Warn().Msg("completion provider returned empty reply")
		return FallbackReply
	}
	return reply
}
