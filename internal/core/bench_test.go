package core

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func benchmarkRoomBroadcast(b *testing.B, recipients int) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil, nil)
	go hub.Run(ctx)

	sender := NewClient("sender")
	hub.RegisterClient(sender)
	sender.Commands <- &Command{Kind: CommandIdentify, Profile: Profile{Username: "sender"}}
	mustEventB(sender.Events, EventRoomsList)

	sender.Commands <- &Command{Kind: CommandCreateRoom, Name: "bench"}
	created := mustEventB(sender.Events, EventRoomCreated)
	roomID := created.Room.ID

	sender.Commands <- &Command{Kind: CommandJoinRoom, RoomID: roomID}
	mustEventB(sender.Events, EventRoomJoined)

	clients := make([]*Client, 0, recipients)
	for i := range recipients {
		c := NewClient(fmt.Sprintf("c%d", i))
		hub.RegisterClient(c)
		c.Commands <- &Command{Kind: CommandIdentify, Profile: Profile{Username: fmt.Sprintf("user%d", i)}}
		c.Commands <- &Command{Kind: CommandJoinRoom, RoomID: roomID}
		clients = append(clients, c)
	}

	// Drain events for all but the first recipient to avoid channel backpressure.
	target := clients[0]
	targetMessages := make(chan *Event, 1)
	go func() {
		for ev := range target.Events {
			if ev.Kind == EventNewMessage {
				targetMessages <- ev
			}
		}
	}()
	for _, c := range clients[1:] {
		go func(cl *Client) {
			for range cl.Events {
			}
		}(c)
	}
	go func() {
		for range sender.Events {
		}
	}()

	// Everyone must be a member before the first send or early
	// messages never reach the target.
	for {
		rooms, err := hub.Rooms(ctx)
		if err != nil {
			b.Fatalf("rooms snapshot: %v", err)
		}
		if len(rooms) == 1 && rooms[0].UserCount == recipients+1 {
			break
		}
		time.Sleep(time.Millisecond)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		sender.Commands <- &Command{Kind: CommandSendMessage, RoomID: roomID, Content: "payload"}
		<-targetMessages
	}
}

func mustEventB(ch <-chan *Event, kind EventKind) *Event {
	for ev := range ch {
		if ev.Kind == kind {
			return ev
		}
	}
	return nil
}

func BenchmarkRoomBroadcast_10(b *testing.B)  { benchmarkRoomBroadcast(b, 10) }
func BenchmarkRoomBroadcast_100(b *testing.B) { benchmarkRoomBroadcast(b, 100) }
func BenchmarkRoomBroadcast_500(b *testing.B) { benchmarkRoomBroadcast(b, 500) }
