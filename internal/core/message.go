package core

import "time"

// MessageKind distinguishes user-authored messages from AI replies.
type MessageKind string

const (
	MessageKindUser MessageKind = "user"
	MessageKindAI   MessageKind = "ai"
)

// Message is the domain model for a chat message. Immutable once created.
type Message struct {
	ID        string
	RoomID    string
	UserID    string
	Username  string
	Avatar    string
	Content   string
	Timestamp time.Time
	Kind      MessageKind
}
