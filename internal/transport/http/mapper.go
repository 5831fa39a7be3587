package http

import (
	"encoding/json"
	"time"

	"github.com/relaychat/relaychat-server/internal/core"
	"github.com/relaychat/relaychat-server/internal/proto"
)

// inboundToCommand maps a wire envelope to a core command. A malformed
// or unknown envelope yields a protocol error for the sender only; it
// is never fatal to the connection.
func inboundToCommand(inbound proto.Inbound) (*core.Command, *proto.Error) {
	switch inbound.Type {
	case proto.InboundTypeUserJoin:
		var data proto.UserJoinData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, badPayload()
		}
		return &core.Command{
			Kind:    core.CommandIdentify,
			Profile: core.Profile{Username: data.Username, Avatar: data.Avatar},
		}, nil
	case proto.InboundTypeRoomJoin:
		var data proto.RoomJoinData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, badPayload()
		}
		if data.RoomID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "roomId is required"}
		}
		return &core.Command{Kind: core.CommandJoinRoom, RoomID: data.RoomID}, nil
	case proto.InboundTypeRoomCreate:
		var data proto.RoomCreateData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, badPayload()
		}
		return &core.Command{Kind: core.CommandCreateRoom, Name: data.Name, Private: data.IsPrivate}, nil
	case proto.InboundTypeMessageSend:
		var data proto.MessageSendData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, badPayload()
		}
		if data.RoomID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "roomId is required"}
		}
		return &core.Command{Kind: core.CommandSendMessage, RoomID: data.RoomID, Content: data.Content}, nil
	case proto.InboundTypeTypingStart, proto.InboundTypeTypingStop:
		var data proto.TypingData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, badPayload()
		}
		if data.RoomID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "roomId is required"}
		}
		kind := core.CommandTypingStart
		if inbound.Type == proto.InboundTypeTypingStop {
			kind = core.CommandTypingStop
		}
		return &core.Command{Kind: kind, RoomID: data.RoomID}, nil
	case proto.InboundTypeUserStatus:
		var data proto.UserStatusData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, badPayload()
		}
		return &core.Command{Kind: core.CommandSetStatus, Status: data.Status}, nil
	default:
		return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "unknown event type"}
	}
}

func badPayload() *proto.Error {
	return &proto.Error{Code: core.ErrCodeBadRequest, Msg: "malformed payload"}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventRoomsList:
		return proto.Outbound{Type: proto.OutboundTypeRoomsList, Data: wireRooms(event.Rooms)}
	case core.EventRoomsUpdate:
		return proto.Outbound{Type: proto.OutboundTypeRoomsUpdate, Data: wireRooms(event.Rooms)}
	case core.EventRoomCreated:
		return proto.Outbound{Type: proto.OutboundTypeRoomCreated, Data: wireRoom(*event.Room)}
	case core.EventRoomJoined:
		joined := proto.RoomJoined{
			Room:        wireRoom(event.Joined.Room),
			Messages:    wireMessages(event.Joined.Messages),
			OnlineUsers: wireUsers(event.Joined.OnlineUsers),
		}
		return proto.Outbound{Type: proto.OutboundTypeRoomJoined, Data: joined}
	case core.EventUserJoined:
		return proto.Outbound{
			Type: proto.OutboundTypeUserJoined,
			Data: proto.MemberEvent{RoomID: event.RoomID, User: wireUser(*event.User)},
		}
	case core.EventUserLeft:
		return proto.Outbound{
			Type: proto.OutboundTypeUserLeft,
			Data: proto.MemberEvent{RoomID: event.RoomID, User: wireUser(*event.User)},
		}
	case core.EventNewMessage:
		return proto.Outbound{Type: proto.OutboundTypeMessageNew, Data: wireMessage(*event.Message)}
	case core.EventTypingStart:
		return proto.Outbound{
			Type: proto.OutboundTypeTypingStart,
			Data: proto.TypingStart{RoomID: event.RoomID, User: wireUser(*event.User)},
		}
	case core.EventTypingStop:
		return proto.Outbound{
			Type: proto.OutboundTypeTypingStop,
			Data: proto.TypingStop{RoomID: event.RoomID, UserID: event.UserID},
		}
	case core.EventOnlineUsers:
		return proto.Outbound{Type: proto.OutboundTypeUsersOnline, Data: wireUsers(event.Users)}
	case core.EventError:
		if event.Err == nil {
			return proto.Outbound{Type: proto.OutboundTypeError, Error: &proto.Error{Code: "unknown", Msg: "unknown error"}}
		}
		return proto.Outbound{Type: proto.OutboundTypeError, Error: &proto.Error{Code: event.Err.Code, Msg: event.Err.Message}}
	default:
		return proto.Outbound{Type: proto.OutboundTypeError, Error: &proto.Error{Code: "unknown", Msg: "unknown event"}}
	}
}

func wireUser(u core.User) proto.User {
	return proto.User{
		ID:       u.ID,
		Username: u.Username,
		Avatar:   u.Avatar,
		Status:   u.Status,
		JoinedAt: u.JoinedAt.Format(time.RFC3339),
	}
}

func wireUsers(users []core.User) []proto.User {
	out := make([]proto.User, 0, len(users))
	for _, u := range users {
		out = append(out, wireUser(u))
	}
	return out
}

func wireRoom(r core.RoomSummary) proto.RoomSummary {
	return proto.RoomSummary{
		ID:        r.ID,
		Name:      r.Name,
		IsPrivate: r.IsPrivate,
		UserCount: r.UserCount,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

func wireRooms(rooms []core.RoomSummary) []proto.RoomSummary {
	out := make([]proto.RoomSummary, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, wireRoom(r))
	}
	return out
}

func wireMessage(m core.Message) proto.Message {
	return proto.Message{
		ID:        m.ID,
		RoomID:    m.RoomID,
		UserID:    m.UserID,
		Username:  m.Username,
		Avatar:    m.Avatar,
		Content:   m.Content,
		Timestamp: m.Timestamp.Format(time.RFC3339),
		Kind:      string(m.Kind),
	}
}

func wireMessages(msgs []core.Message) []proto.Message {
	out := make([]proto.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, wireMessage(m))
	}
	return out
}
