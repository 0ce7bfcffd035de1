package vanillaexport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forumport/vanillaexport/types"
)

func TestExporter_GetCategories(t *testing.T) {
	want := types.Categories{
		1: {CID: 1, Name: "General", Description: "General discussion", Timestamp: 1577836800000},
		2: {CID: 2, Name: "Untitled Category 2", Description: "No description available", Timestamp: startms},
		3: {CID: 3, Name: "Announcements", Description: "News", Timestamp: 1583020800000},
	}
	e := testExporter(t, nil)
	got, err := e.GetCategories(t.Context())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NotContains(t, got, int64(-1), "root category must be skipped")
}

func TestExporter_GetPaginatedCategories(t *testing.T) {
	e := testExporter(t, nil)
	got, err := e.GetPaginatedCategories(t.Context(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, types.Keys(got))
}
