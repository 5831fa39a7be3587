package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandIdentify registers the connection's user identity.
	CommandIdentify CommandKind = iota
	// CommandJoinRoom moves the client into a room, leaving any previous one.
	CommandJoinRoom
	// CommandCreateRoom creates a new room without joining it.
	CommandCreateRoom
	// CommandSendMessage delivers a chat message to room participants.
	CommandSendMessage
	// CommandTypingStart relays a typing indicator to other room members.
	CommandTypingStart
	// CommandTypingStop relays the end of a typing indicator.
	CommandTypingStop
	// CommandSetStatus updates the user's presence status.
	CommandSetStatus
	// CommandAIReply is posted by the hub itself when a responder call
	// completes; it never originates from a client.
	CommandAIReply
)

// Command represents an action requested by a client (or, for
// CommandAIReply, the hub's own responder continuation).
type Command struct {
	Kind    CommandKind
	RoomID  string
	Profile Profile
	Name    string // room name for CommandCreateRoom
	Private bool
	Content string
	Status  string
}
