package core

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Room groups connections for message fan-out. Membership holds
// connection ids only; user identity is resolved through the registry.
type Room struct {
	ID        string
	Name      string
	IsPrivate bool
	CreatedAt time.Time
	members   map[string]struct{}
}

// AddMember inserts a connection into the room. Returns true if newly added.
func (r *Room) AddMember(connID string) bool {
	if _, exists := r.members[connID]; exists {
		return false
	}
	r.members[connID] = struct{}{}
	return true
}

// RemoveMember deletes a connection from the room. Returns true if removed.
func (r *Room) RemoveMember(connID string) bool {
	if _, exists := r.members[connID]; !exists {
		return false
	}
	delete(r.members, connID)
	return true
}

// Has reports whether a connection is a member of the room.
func (r *Room) Has(connID string) bool {
	_, exists := r.members[connID]
	return exists
}

// Members returns a snapshot of member connection ids.
func (r *Room) Members() []string {
	ids := make([]string, 0, len(r.members))
	for id := range r.members {
		ids = append(ids, id)
	}
	return ids
}

// MemberCount reports the current number of members.
func (r *Room) MemberCount() int {
	return len(r.members)
}

// Summary builds the client-facing view of the room.
func (r *Room) Summary() RoomSummary {
	return RoomSummary{
		ID:        r.ID,
		Name:      r.Name,
		IsPrivate: r.IsPrivate,
		UserCount: len(r.members),
		CreatedAt: r.CreatedAt,
	}
}

// RoomStore owns all rooms, keyed by id. Rooms are never deleted:
// an empty room stays listed for the life of the process, so the room
// count only grows on long-lived deployments.
type RoomStore struct {
	rooms map[string]*Room
	order []string // creation order, for stable listings
}

// NewRoomStore constructs an empty room store.
func NewRoomStore() *RoomStore {
	return &RoomStore{rooms: make(map[string]*Room)}
}

// Create adds a room with a fresh unique id and empty membership.
// Duplicate names are permitted; each call yields a distinct room.
// Fails if the name is empty or whitespace-only.
func (s *RoomStore) Create(name string, isPrivate bool) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBadRequest
	}

	room := &Room{
		ID:        uuid.NewString(),
		Name:      name,
		IsPrivate: isPrivate,
		CreatedAt: time.Now(),
		members:   make(map[string]struct{}),
	}
	s.rooms[room.ID] = room
	s.order = append(s.order, room.ID)
	return room, nil
}

// Get returns the room with the given id.
func (s *RoomStore) Get(roomID string) (*Room, bool) {
	room, ok := s.rooms[roomID]
	return room, ok
}

// List returns summaries of all rooms in creation order.
func (s *RoomStore) List() []RoomSummary {
	summaries := make([]RoomSummary, 0, len(s.order))
	for _, id := range s.order {
		summaries = append(summaries, s.rooms[id].Summary())
	}
	return summaries
}

// Len reports the number of rooms.
func (s *RoomStore) Len() int {
	return len(s.rooms)
}
