package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterValidatesUsername(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Register("c1", Profile{Username: ""})
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = reg.Register("c1", Profile{Username: "  \t "})
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Zero(t, reg.Len())
}

func TestRegistryRegisterDefaults(t *testing.T) {
	reg := NewRegistry()

	user, err := reg.Register("c1", Profile{Username: "  alice "})
	require.NoError(t, err)
	assert.Equal(t, "c1", user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, DefaultAvatar, user.Avatar)
	assert.Equal(t, StatusOnline, user.Status)
	assert.False(t, user.JoinedAt.IsZero())
}

func TestRegistryReRegisterLastWriteWins(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Register("c1", Profile{Username: "alice", Avatar: "🦊"})
	require.NoError(t, err)
	_, err = reg.Register("c1", Profile{Username: "alicia"})
	require.NoError(t, err)

	user, ok := reg.Get("c1")
	require.True(t, ok)
	assert.Equal(t, "alicia", user.Username)
	assert.Equal(t, DefaultAvatar, user.Avatar)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistryUnregisterIdempotent(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Register("c1", Profile{Username: "alice"})
	require.NoError(t, err)

	reg.Unregister("c1")
	reg.Unregister("c1")

	_, ok := reg.Get("c1")
	assert.False(t, ok)
	assert.Zero(t, reg.Len())
}

func TestRegistrySetStatus(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Register("c1", Profile{Username: "alice"})
	require.NoError(t, err)

	user, ok := reg.SetStatus("c1", "away")
	require.True(t, ok)
	assert.Equal(t, "away", user.Status)

	stored, _ := reg.Get("c1")
	assert.Equal(t, "away", stored.Status)

	_, ok = reg.SetStatus("ghost", "away")
	assert.False(t, ok)
}

func TestRegistryAllIsSnapshot(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Register("c1", Profile{Username: "alice"})
	require.NoError(t, err)

	users := reg.All()
	require.Len(t, users, 1)
	users[0].Username = "mutated"

	stored, _ := reg.Get("c1")
	assert.Equal(t, "alice", stored.Username)
}
