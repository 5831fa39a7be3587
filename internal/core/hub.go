package core

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Responder produces an AI reply for a prompt given the recent room
// transcript. Implementations absorb provider failures and return a
// fallback reply instead of an error; a call may block for an
// unbounded time and must be invoked off the hub goroutine.
type Responder interface {
	Reply(ctx context.Context, prompt string, transcript []Message) string
}

// JoinHistoryLimit caps the history snapshot delivered on room join.
const JoinHistoryLimit = 50

// aiContextLimit caps the transcript handed to the responder.
const aiContextLimit = 10

// Stats is the hub state snapshot served by the health probe.
type Stats struct {
	Rooms int
	Users int
}

// envelope pairs a command with the client that issued it. A nil
// client marks a hub-internal continuation (responder completion).
type envelope struct {
	client *Client
	cmd    *Command
}

type statsRequest struct {
	reply chan Stats
}

type roomsRequest struct {
	reply chan []RoomSummary
}

// Hub is the broadcast router: the single serialization point for all
// mutations of the registry, room store, and history ledger. All state
// it owns is touched only from the Run goroutine; no other locking is
// used or needed.
type Hub struct {
	registry  *Registry
	rooms     *RoomStore
	history   *Ledger
	responder Responder
	log       *zerolog.Logger

	clients    map[string]*Client
	inbound    chan envelope
	register   chan *Client
	unregister chan *Client
	stats      chan statsRequest
	roomList   chan roomsRequest
}

// NewHub constructs a hub. The responder may be nil, in which case AI
// invocations are ignored.
func NewHub(responder Responder, logger *zerolog.Logger) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Hub{
		registry:   NewRegistry(),
		rooms:      NewRoomStore(),
		history:    NewLedger(),
		responder:  responder,
		log:        logger,
		clients:    make(map[string]*Client),
		inbound:    make(chan envelope, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		stats:      make(chan statsRequest),
		roomList:   make(chan roomsRequest),
	}
}

// SeedRooms creates the initial public rooms. Must be called before
// Run starts.
func (h *Hub) SeedRooms(names []string) {
	for _, name := range names {
		room, err := h.rooms.Create(name, false)
		if err != nil {
			h.log.Warn().Err(err).Str("room_name", name).Msg("skipping seed room")
			continue
		}
		h.history.Init(room.ID)
	}
}

// RegisterClient hands a new connection to the hub. The hub drains the
// client's Commands channel until it is closed.
func (h *Hub) RegisterClient(c *Client) {
	h.register <- c
}

// UnregisterClient tears down a connection: room membership removal,
// registry removal, and the resulting broadcasts. Idempotent.
func (h *Hub) UnregisterClient(c *Client) {
	h.unregister <- c
}

// Stats returns a consistent room/user count snapshot.
func (h *Hub) Stats(ctx context.Context) (Stats, error) {
	req := statsRequest{reply: make(chan Stats, 1)}
	select {
	case h.stats <- req:
	case <-ctx.Done():
		return Stats{}, ctx.Err()
	}
	select {
	case s := <-req.reply:
		return s, nil
	case <-ctx.Done():
		return Stats{}, ctx.Err()
	}
}

// Rooms returns a snapshot of all rooms with computed member counts.
func (h *Hub) Rooms(ctx context.Context) ([]RoomSummary, error) {
	req := roomsRequest{reply: make(chan []RoomSummary, 1)}
	select {
	case h.roomList <- req:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case rooms := <-req.reply:
		return rooms, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Run processes hub traffic until the context is cancelled. Exactly
// one Run goroutine may exist per hub.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.clients[c.ID] = c
			go h.forward(ctx, c)
			h.log.Debug().Str("client_id", c.ID).Msg("client registered")
		case c := <-h.unregister:
			h.teardown(c)
		case env := <-h.inbound:
			h.handle(ctx, env)
		case req := <-h.stats:
			req.reply <- Stats{Rooms: h.rooms.Len(), Users: h.registry.Len()}
		case req := <-h.roomList:
			req.reply <- h.rooms.List()
		}
	}
}

// forward pumps one client's commands into the serialization loop.
func (h *Hub) forward(ctx context.Context, c *Client) {
	for {
		select {
		case <-ctx.Done():
			return
		case cmd, ok := <-c.Commands:
			if !ok {
				return
			}
			select {
			case h.inbound <- envelope{client: c, cmd: cmd}:
			case <-ctx.Done():
				return
			}
		}
	}
}

// handle dispatches one inbound command. Every branch validates its
// own preconditions; a failed precondition drops the command without
// touching shared state.
func (h *Hub) handle(ctx context.Context, env envelope) {
	cmd := env.cmd
	if cmd == nil {
		return
	}

	if cmd.Kind == CommandAIReply {
		h.handleAIReply(cmd)
		return
	}

	c := env.client
	if c == nil {
		return
	}
	if _, stillConnected := h.clients[c.ID]; !stillConnected {
		return
	}

	switch cmd.Kind {
	case CommandIdentify:
		h.handleIdentify(c, cmd)
	case CommandJoinRoom:
		h.handleJoinRoom(c, cmd)
	case CommandCreateRoom:
		h.handleCreateRoom(c, cmd)
	case CommandSendMessage:
		h.handleSendMessage(ctx, c, cmd)
	case CommandTypingStart:
		h.handleTyping(c, cmd, true)
	case CommandTypingStop:
		h.handleTyping(c, cmd, false)
	case CommandSetStatus:
		h.handleSetStatus(c, cmd)
	default:
		h.log.Debug().Str("client_id", c.ID).Int("kind", int(cmd.Kind)).Msg("unknown command dropped")
	}
}

func (h *Hub) handleIdentify(c *Client, cmd *Command) {
	user, err := h.registry.Register(c.ID, cmd.Profile)
	if err != nil {
		h.sendError(c, coreError(ErrCodeBadRequest, "username is required"))
		return
	}

	h.send(c, &Event{Kind: EventRoomsList, Rooms: h.rooms.List()})
	h.broadcastAll(&Event{Kind: EventOnlineUsers, Users: h.registry.All()})
	h.log.Info().Str("client_id", c.ID).Str("username", user.Username).Msg("user identified")
}

func (h *Hub) handleJoinRoom(c *Client, cmd *Command) {
	user, ok := h.registry.Get(c.ID)
	if !ok {
		h.sendError(c, coreError(ErrCodeUserNotFound, "identify before joining a room"))
		return
	}
	room, ok := h.rooms.Get(cmd.RoomID)
	if !ok {
		h.sendError(c, coreError(ErrCodeRoomNotFound, "room not found"))
		return
	}

	// Room switch is one hub-side operation: leave the previous room,
	// then enter the target. Both steps happen before any event for
	// the new room is emitted, so membership cardinality never
	// exceeds one.
	h.leaveCurrentRoom(c, user, room.ID)

	newlyJoined := room.AddMember(c.ID)
	c.CurrentRoom = room.ID

	h.send(c, &Event{
		Kind:   EventRoomJoined,
		RoomID: room.ID,
		Joined: &JoinedRoom{
			Room:        room.Summary(),
			Messages:    h.history.Recent(room.ID, JoinHistoryLimit),
			OnlineUsers: h.onlineInRoom(room),
		},
	})
	if newlyJoined {
		h.broadcastRoom(room, &Event{Kind: EventUserJoined, RoomID: room.ID, User: &user}, c.ID)
	}
	h.broadcastAll(&Event{Kind: EventRoomsUpdate, Rooms: h.rooms.List()})
	h.log.Debug().Str("client_id", c.ID).Str("room_id", room.ID).Msg("client joined room")
}

func (h *Hub) handleCreateRoom(c *Client, cmd *Command) {
	if _, ok := h.registry.Get(c.ID); !ok {
		h.sendError(c, coreError(ErrCodeUserNotFound, "identify before creating a room"))
		return
	}

	room, err := h.rooms.Create(cmd.Name, cmd.Private)
	if err != nil {
		h.sendError(c, coreError(ErrCodeBadRequest, "room name is required"))
		return
	}
	h.history.Init(room.ID)

	summary := room.Summary()
	h.broadcastAll(&Event{Kind: EventRoomsList, Rooms: h.rooms.List()})
	h.send(c, &Event{Kind: EventRoomCreated, Room: &summary})
	h.log.Info().Str("room_id", room.ID).Str("room_name", room.Name).Msg("room created")
}

func (h *Hub) handleSendMessage(ctx context.Context, c *Client, cmd *Command) {
	user, ok := h.registry.Get(c.ID)
	if !ok {
		return
	}
	content := strings.TrimSpace(cmd.Content)
	if content == "" {
		return
	}
	room, ok := h.rooms.Get(cmd.RoomID)
	if !ok || !room.Has(c.ID) {
		return
	}

	msg := Message{
		ID:        uuid.NewString(),
		RoomID:    room.ID,
		UserID:    user.ID,
		Username:  user.Username,
		Avatar:    user.Avatar,
		Content:   content,
		Timestamp: time.Now(),
		Kind:      MessageKindUser,
	}
	h.history.Append(room.ID, msg)
	h.broadcastRoom(room, &Event{Kind: EventNewMessage, RoomID: room.ID, Message: &msg}, "")

	if h.responder != nil && HasAITrigger(content) {
		h.invokeResponder(ctx, room, content)
	}
}

// invokeResponder announces the AI typing indicator and dispatches the
// gateway call off the hub goroutine. The eventual reply re-enters the
// serialization loop as a CommandAIReply envelope, so it lands after
// whatever the hub processed during the wait.
func (h *Hub) invokeResponder(ctx context.Context, room *Room, content string) {
	bot := AIUser()
	h.broadcastRoom(room, &Event{Kind: EventTypingStart, RoomID: room.ID, User: &bot}, "")

	prompt := AIPrompt(content)
	transcript := h.history.Recent(room.ID, aiContextLimit)
	roomID := room.ID

	go func() {
		reply := h.responder.Reply(ctx, prompt, transcript)
		select {
		case h.inbound <- envelope{cmd: &Command{Kind: CommandAIReply, RoomID: roomID, Content: reply}}:
		case <-ctx.Done():
		}
	}()
}

func (h *Hub) handleAIReply(cmd *Command) {
	room, ok := h.rooms.Get(cmd.RoomID)
	if !ok {
		return
	}

	msg := Message{
		ID:        uuid.NewString(),
		RoomID:    room.ID,
		UserID:    AIUserID,
		Username:  AIUsername,
		Avatar:    AIAvatar,
		Content:   cmd.Content,
		Timestamp: time.Now(),
		Kind:      MessageKindAI,
	}
	h.history.Append(room.ID, msg)
	h.broadcastRoom(room, &Event{Kind: EventNewMessage, RoomID: room.ID, Message: &msg}, "")
	h.broadcastRoom(room, &Event{Kind: EventTypingStop, RoomID: room.ID, UserID: AIUserID}, "")
}

func (h *Hub) handleTyping(c *Client, cmd *Command, start bool) {
	user, ok := h.registry.Get(c.ID)
	if !ok {
		return
	}
	room, ok := h.rooms.Get(cmd.RoomID)
	if !ok {
		return
	}

	// The acting user always comes from the registry, never from the
	// raw client payload.
	if start {
		h.broadcastRoom(room, &Event{Kind: EventTypingStart, RoomID: room.ID, User: &user}, c.ID)
	} else {
		h.broadcastRoom(room, &Event{Kind: EventTypingStop, RoomID: room.ID, UserID: user.ID}, c.ID)
	}
}

func (h *Hub) handleSetStatus(c *Client, cmd *Command) {
	if _, ok := h.registry.SetStatus(c.ID, cmd.Status); !ok {
		return
	}
	h.broadcastAll(&Event{Kind: EventOnlineUsers, Users: h.registry.All()})
}

// teardown is the terminal transition for a connection: leave the
// current room, drop the identity, broadcast presence. Safe to run
// more than once for the same client.
func (h *Hub) teardown(c *Client) {
	if _, stillConnected := h.clients[c.ID]; !stillConnected {
		return
	}
	delete(h.clients, c.ID)

	user, registered := h.registry.Get(c.ID)
	if registered {
		h.leaveCurrentRoom(c, user, "")
		h.registry.Unregister(c.ID)
		h.broadcastAll(&Event{Kind: EventOnlineUsers, Users: h.registry.All()})
		h.log.Info().Str("client_id", c.ID).Str("username", user.Username).Msg("user disconnected")
		return
	}
	h.log.Debug().Str("client_id", c.ID).Msg("client disconnected")
}

// leaveCurrentRoom removes the client from its current room unless
// that room is skipID, emitting the leave notification when membership
// actually changed.
func (h *Hub) leaveCurrentRoom(c *Client, user User, skipID string) {
	if c.CurrentRoom == "" || c.CurrentRoom == skipID {
		return
	}
	room, ok := h.rooms.Get(c.CurrentRoom)
	c.CurrentRoom = ""
	if !ok {
		return
	}
	if room.RemoveMember(c.ID) {
		h.broadcastRoom(room, &Event{Kind: EventUserLeft, RoomID: room.ID, User: &user}, "")
	}
}

// onlineInRoom derives the presence list for a room from the registry.
func (h *Hub) onlineInRoom(room *Room) []User {
	users := make([]User, 0, room.MemberCount())
	for _, id := range room.Members() {
		if user, ok := h.registry.Get(id); ok {
			users = append(users, user)
		}
	}
	return users
}

// send delivers an event to one client, dropping it if the client's
// buffer is full (slow consumer).
func (h *Hub) send(c *Client, ev *Event) {
	select {
	case c.Events <- ev:
	default:
		h.log.Debug().Str("client_id", c.ID).Int("kind", int(ev.Kind)).Msg("event dropped, slow consumer")
	}
}

func (h *Hub) sendError(c *Client, cerr *CoreError) {
	h.send(c, &Event{Kind: EventError, Err: cerr})
}

// broadcastAll fans an event out to every connected client.
func (h *Hub) broadcastAll(ev *Event) {
	for _, c := range h.clients {
		h.send(c, ev)
	}
}

// broadcastRoom fans an event out to every member of a room, skipping
// exceptID when non-empty.
func (h *Hub) broadcastRoom(room *Room, ev *Event, exceptID string) {
	for _, id := range room.Members() {
		if id == exceptID {
			continue
		}
		if c, ok := h.clients[id]; ok {
			h.send(c, ev)
		}
	}
}
