package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomStoreCreateValidatesName(t *testing.T) {
	store := NewRoomStore()

	_, err := store.Create("  ", false)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Zero(t, store.Len())
}

func TestRoomStoreDuplicateNamesDistinct(t *testing.T) {
	store := NewRoomStore()

	first, err := store.Create("ops", false)
	require.NoError(t, err)
	second, err := store.Create("ops", true)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, store.Len())

	first.AddMember("c1")
	assert.Equal(t, 1, first.MemberCount())
	assert.Zero(t, second.MemberCount())
}

func TestRoomStoreListInCreationOrder(t *testing.T) {
	store := NewRoomStore()
	for _, name := range []string{"General", "Tech Talk", "Random"} {
		_, err := store.Create(name, false)
		require.NoError(t, err)
	}

	list := store.List()
	require.Len(t, list, 3)
	assert.Equal(t, "General", list[0].Name)
	assert.Equal(t, "Tech Talk", list[1].Name)
	assert.Equal(t, "Random", list[2].Name)
}

func TestRoomMembership(t *testing.T) {
	store := NewRoomStore()
	room, err := store.Create("ops", false)
	require.NoError(t, err)

	assert.True(t, room.AddMember("c1"))
	assert.False(t, room.AddMember("c1"), "second add is a no-op")
	assert.True(t, room.Has("c1"))

	assert.True(t, room.RemoveMember("c1"))
	assert.False(t, room.RemoveMember("c1"), "second remove is a no-op")
	assert.False(t, room.Has("c1"))
	assert.Zero(t, room.MemberCount())
}

func TestRoomSummaryCountsMembers(t *testing.T) {
	store := NewRoomStore()
	room, err := store.Create("ops", true)
	require.NoError(t, err)
	room.AddMember("c1")
	room.AddMember("c2")

	summary := room.Summary()
	assert.Equal(t, room.ID, summary.ID)
	assert.True(t, summary.IsPrivate)
	assert.Equal(t, 2, summary.UserCount)
}
