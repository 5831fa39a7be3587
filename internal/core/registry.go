package core

import (
	"strings"
	"time"
)

// Registry maps connection ids to user identities. It is owned by the
// hub goroutine and must not be touched from anywhere else.
type Registry struct {
	users map[string]User
}

// NewRegistry constructs an empty connection registry.
func NewRegistry() *Registry {
	return &Registry{users: make(map[string]User)}
}

// Register binds a user identity to a connection id. A second call for
// the same id overwrites the previous identity (last-write-wins).
// Fails if the username is empty or whitespace-only.
func (r *Registry) Register(connID string, profile Profile) (User, error) {
	username := strings.TrimSpace(profile.Username)
	if username == "" {
		return User{}, ErrBadRequest
	}

	avatar := profile.Avatar
	if avatar == "" {
		avatar = DefaultAvatar
	}

	user := User{
		ID:       connID,
		Username: username,
		Avatar:   avatar,
		Status:   StatusOnline,
		JoinedAt: time.Now(),
	}
	r.users[connID] = user
	return user, nil
}

// Unregister removes a connection's identity. Idempotent.
func (r *Registry) Unregister(connID string) {
	delete(r.users, connID)
}

// Get returns the user bound to a connection id.
func (r *Registry) Get(connID string) (User, bool) {
	user, ok := r.users[connID]
	return user, ok
}

// SetStatus mutates a registered user's status. Returns the updated
// user, or false if the connection is not registered.
func (r *Registry) SetStatus(connID, status string) (User, bool) {
	user, ok := r.users[connID]
	if !ok {
		return User{}, false
	}
	user.Status = status
	r.users[connID] = user
	return user, true
}

// All returns a snapshot of every registered user.
func (r *Registry) All() []User {
	users := make([]User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users
}

// Len reports the number of registered users.
func (r *Registry) Len() int {
	return len(r.users)
}
