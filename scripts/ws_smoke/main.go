package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/relaychat/relaychat-server/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_smoke: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:3000/ws", "WebSocket address")
	user := flag.String("user", "tester", "username to announce")
	text := flag.String("text", "hello from smoke test", "message text to send")
	timeout := flag.Duration("timeout", 10*time.Second, "total timeout for the run")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	send := func(eventType string, data any) error {
		payload, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", eventType, err)
		}
		if err := wsjson.Write(ctx, conn, proto.Inbound{Type: eventType, Data: payload}); err != nil {
			return fmt.Errorf("send %s: %w", eventType, err)
		}
		return nil
	}

	if err := send(proto.InboundTypeUserJoin, proto.UserJoinData{Username: *user}); err != nil {
		return err
	}

	// Identify first, then join the first listed room and post a message.
	joined := false
	for {
		var outbound proto.Outbound
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			return fmt.Errorf("read: %w", err)
		}
		fmt.Printf("received: type=%s\n", outbound.Type)

		if outbound.Error != nil {
			fmt.Printf("error: %s (%s)\n", outbound.Error.Msg, outbound.Error.Code)
			continue
		}

		raw, err := json.Marshal(outbound.Data)
		if err != nil {
			return fmt.Errorf("marshal outbound data: %w", err)
		}

		switch outbound.Type {
		case proto.OutboundTypeRoomsList:
			if joined {
				continue
			}
			var rooms []proto.RoomSummary
			if err := json.Unmarshal(raw, &rooms); err != nil {
				return fmt.Errorf("unmarshal rooms: %w", err)
			}
			if len(rooms) == 0 {
				return fmt.Errorf("server has no rooms")
			}
			fmt.Printf("joining room %q (%s)\n", rooms[0].Name, rooms[0].ID)
			if err := send(proto.InboundTypeRoomJoin, proto.RoomJoinData{RoomID: rooms[0].ID}); err != nil {
				return err
			}
		case proto.OutboundTypeRoomJoined:
			var snapshot proto.RoomJoined
			if err := json.Unmarshal(raw, &snapshot); err != nil {
				return fmt.Errorf("unmarshal joined: %w", err)
			}
			joined = true
			fmt.Printf("joined: room=%s history=%d online=%d\n",
				snapshot.Room.Name, len(snapshot.Messages), len(snapshot.OnlineUsers))
			if err := send(proto.InboundTypeMessageSend, proto.MessageSendData{
				RoomID:  snapshot.Room.ID,
				Content: *text,
			}); err != nil {
				return err
			}
		case proto.OutboundTypeMessageNew:
			var msg proto.Message
			if err := json.Unmarshal(raw, &msg); err != nil {
				return fmt.Errorf("unmarshal message: %w", err)
			}
			fmt.Printf("message: room=%s user=%s kind=%s content=%q\n", msg.RoomID, msg.Username, msg.Kind, msg.Content)
			if msg.Username == *user {
				return nil
			}
		}
	}
}
