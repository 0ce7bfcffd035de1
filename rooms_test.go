package vanillaexport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forumport/vanillaexport/types"
)

func TestExporter_GetRooms(t *testing.T) {
	want := types.Rooms{
		1: {RoomID: 1, UID: 1, UIDs: []int64{1, 2, 10}, RoomName: "Chat Room 1", Timestamp: 1583020800000},
		2: {RoomID: 2, UID: 2, UIDs: []int64{2, 4}, RoomName: "Chat Room 2", Timestamp: 1583107200000},
		3: {RoomID: 3, UID: 4, UIDs: []int64{}, RoomName: "Chat Room 3", Timestamp: startms},
		4: {RoomID: 4, UID: 1, UIDs: []int64{}, RoomName: "Chat Room 4", Timestamp: 1583193600000},
	}
	e := testExporter(t, nil)
	got, err := e.GetRooms(t.Context())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExporter_GetMessages(t *testing.T) {
	want := types.Messages{
		1: {MID: 1, RoomID: 1, FromUID: 1, Content: "Hello", Timestamp: 1583020801000},
		2: {MID: 2, RoomID: 1, FromUID: 2, Content: "Hi there", Timestamp: 1583021100000},
		3: {MID: 3, RoomID: 2, FromUID: 4, Content: "ping", Timestamp: startms},
	}
	e := testExporter(t, nil)
	got, err := e.GetMessages(t.Context())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	page, err := e.GetPaginatedMessages(t.Context(), 2, 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, types.Keys(page))
}
