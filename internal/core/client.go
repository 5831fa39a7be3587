package core

// Client is one live connection as seen by the hub.
//
// Commands is written by the transport and drained into the hub's
// serialization loop; Events is written by the hub and drained by the
// transport's write loop. CurrentRoom is owned by the hub goroutine:
// a client is a member of at most one room, and room switches update
// this field as part of the same hub-side operation that moves the
// membership.
type Client struct {
	ID          string
	Commands    chan *Command
	Events      chan *Event
	CurrentRoom string
}

// NewClient constructs a client with initialized channels.
func NewClient(id string) *Client {
	return &Client{
		ID:       id,
		Commands: make(chan *Command, 8),
		Events:   make(chan *Event, 32),
	}
}
