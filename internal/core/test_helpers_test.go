package core

import (
	"context"
	"testing"
	"time"
)

func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		case <-deadline:
			t.Fatalf("expected event kind %v not received", kind)
			return nil
		}
	}
}

// nextEvent returns the next event of any kind, for ordering checks.
func nextEvent(t *testing.T, ch <-chan *Event) *Event {
	t.Helper()

	select {
	case ev := <-ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("expected an event, channel stayed empty")
		return nil
	}
}

func mustQuiet(t *testing.T, ch <-chan *Event) {
	t.Helper()

	select {
	case ev := <-ch:
		t.Fatalf("expected no event, got kind %v", ev.Kind)
	case <-time.After(150 * time.Millisecond):
	}
}

// stubResponder is a controllable Responder for hub tests.
type stubResponder struct {
	reply   string
	release chan struct{} // when non-nil, Reply blocks until closed
	prompts chan string
}

func (s *stubResponder) Reply(_ context.Context, prompt string, _ []Message) string {
	if s.prompts != nil {
		s.prompts <- prompt
	}
	if s.release != nil {
		<-s.release
	}
	return s.reply
}

func startHub(t *testing.T, responder Responder, seedRooms ...string) *Hub {
	t.Helper()

	hub := NewHub(responder, nil)
	hub.SeedRooms(seedRooms)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func identify(t *testing.T, hub *Hub, id, username string) *Client {
	t.Helper()

	c := NewClient(id)
	hub.RegisterClient(c)
	c.Commands <- &Command{Kind: CommandIdentify, Profile: Profile{Username: username}}
	mustEvent(t, c.Events, EventRoomsList)
	mustEvent(t, c.Events, EventOnlineUsers)
	return c
}

func createRoom(t *testing.T, hub *Hub, c *Client, name string) string {
	t.Helper()

	c.Commands <- &Command{Kind: CommandCreateRoom, Name: name}
	ev := mustEvent(t, c.Events, EventRoomCreated)
	if ev.Room == nil || ev.Room.ID == "" {
		t.Fatalf("room created event missing summary: %+v", ev)
	}
	return ev.Room.ID
}

func joinRoom(t *testing.T, c *Client, roomID string) *JoinedRoom {
	t.Helper()

	c.Commands <- &Command{Kind: CommandJoinRoom, RoomID: roomID}
	ev := mustEvent(t, c.Events, EventRoomJoined)
	if ev.Joined == nil {
		t.Fatalf("joined event missing snapshot: %+v", ev)
	}
	return ev.Joined
}
