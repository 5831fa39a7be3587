package core

import "time"

// User is a chat participant bound to one live connection.
// The ID is the connection id; the record exists only while the
// connection is registered.
type User struct {
	ID       string
	Username string
	Avatar   string
	Status   string
	JoinedAt time.Time
}

// Profile carries the client-supplied identity fields of a join request.
type Profile struct {
	Username string
	Avatar   string
}

const (
	// DefaultAvatar is used when a profile omits one.
	DefaultAvatar = "👤"
	// StatusOnline is the initial status of a freshly registered user.
	StatusOnline = "online"
)

// Identity of the built-in AI responder as seen by room participants.
const (
	AIUserID   = "ai-assistant"
	AIUsername = "AI Assistant"
	AIAvatar   = "🤖"
)

// AIUser returns the synthetic user record for the AI responder.
func AIUser() User {
	return User{
		ID:       AIUserID,
		Username: AIUsername,
		Avatar:   AIAvatar,
		Status:   StatusOnline,
	}
}
