// Package proto defines the JSON wire protocol spoken over the
// WebSocket channel, both directions.
package proto

import "encoding/json"

// Inbound is the envelope for events coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Inbound event types.
const (
	InboundTypeUserJoin    = "user:join"
	InboundTypeRoomJoin    = "room:join"
	InboundTypeRoomCreate  = "room:create"
	InboundTypeMessageSend = "message:send"
	InboundTypeTypingStart = "typing:start"
	InboundTypeTypingStop  = "typing:stop"
	InboundTypeUserStatus  = "user:status"
)

// Outbound event types.
const (
	OutboundTypeRoomsList   = "rooms:list"
	OutboundTypeRoomsUpdate = "rooms:update"
	OutboundTypeRoomCreated = "room:created"
	OutboundTypeRoomJoined  = "room:joined"
	OutboundTypeUserJoined  = "room:userJoined"
	OutboundTypeUserLeft    = "room:userLeft"
	OutboundTypeMessageNew  = "message:new"
	OutboundTypeTypingStart = "typing:start"
	OutboundTypeTypingStop  = "typing:stop"
	OutboundTypeUsersOnline = "users:online"
	OutboundTypeError       = "error"
)

// UserJoinData introduces the connecting user.
type UserJoinData struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

// RoomJoinData requests to join a specific room.
type RoomJoinData struct {
	RoomID string `json:"roomId"`
}

// RoomCreateData requests a new room.
type RoomCreateData struct {
	Name      string `json:"name"`
	IsPrivate bool   `json:"isPrivate"`
}

// MessageSendData is a chat message from the client.
type MessageSendData struct {
	RoomID  string `json:"roomId"`
	Content string `json:"content"`
}

// TypingData scopes a typing indicator to a room.
type TypingData struct {
	RoomID string `json:"roomId"`
}

// UserStatusData updates the sender's presence status.
type UserStatusData struct {
	Status string `json:"status"`
}

// Outbound is the envelope for events sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// User is the wire view of a chat participant.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Status   string `json:"status"`
	JoinedAt string `json:"joinedAt"`
}

// RoomSummary is the wire view of a room.
type RoomSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsPrivate bool   `json:"isPrivate"`
	UserCount int    `json:"userCount"`
	CreatedAt string `json:"createdAt"`
}

// Message is the wire view of a chat message.
type Message struct {
	ID        string `json:"id"`
	RoomID    string `json:"roomId"`
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	Avatar    string `json:"avatar"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Kind      string `json:"type"`
}

// RoomJoined is the snapshot delivered to a client entering a room.
type RoomJoined struct {
	Room        RoomSummary `json:"room"`
	Messages    []Message   `json:"messages"`
	OnlineUsers []User      `json:"onlineUsers"`
}

// MemberEvent announces a user joining or leaving a room.
type MemberEvent struct {
	RoomID string `json:"roomId"`
	User   User   `json:"user"`
}

// TypingStart announces that a user started typing in a room.
type TypingStart struct {
	RoomID string `json:"roomId"`
	User   User   `json:"user"`
}

// TypingStop announces that a user stopped typing in a room.
type TypingStop struct {
	RoomID string `json:"roomId"`
	UserID string `json:"userId"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
