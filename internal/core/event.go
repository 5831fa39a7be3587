package core

import "time"

// EventKind is a notification the hub emits to clients.
type EventKind int

const (
	// EventRoomsList delivers the full room catalog to a client.
	EventRoomsList EventKind = iota
	// EventRoomsUpdate notifies all clients that the catalog changed.
	EventRoomsUpdate
	// EventRoomCreated confirms a created room to its creator.
	EventRoomCreated
	// EventRoomJoined delivers the joined-room snapshot to the joiner.
	EventRoomJoined
	// EventUserJoined notifies room members that a user joined.
	EventUserJoined
	// EventUserLeft notifies room members that a user left.
	EventUserLeft
	// EventNewMessage notifies room members about a chat message.
	EventNewMessage
	// EventTypingStart relays a typing indicator.
	EventTypingStart
	// EventTypingStop relays the end of a typing indicator.
	EventTypingStop
	// EventOnlineUsers delivers the presence snapshot to all clients.
	EventOnlineUsers
	// EventError notifies a single client about a domain error.
	EventError
)

// RoomSummary is the room view exposed to clients and probes.
type RoomSummary struct {
	ID        string
	Name      string
	IsPrivate bool
	UserCount int
	CreatedAt time.Time
}

// JoinedRoom is the snapshot handed to a client entering a room.
type JoinedRoom struct {
	Room        RoomSummary
	Messages    []Message
	OnlineUsers []User
}

// Event is sent to clients to describe what happened in the system.
// Only the fields relevant to Kind are populated. User carries the
// acting user for join/leave/typing-start; UserID alone identifies the
// actor for typing-stop.
type Event struct {
	Kind    EventKind
	RoomID  string
	User    *User
	UserID  string
	Rooms   []RoomSummary
	Room    *RoomSummary
	Joined  *JoinedRoom
	Message *Message
	Users   []User
	Err     *CoreError
}
