package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_AddAndSearch(t *testing.T) {
	idx, err := NewMemOnly()
	require.NoError(t, err)
	defer idx.Close()

	require.NoError(t, idx.Add(&TopicDocument{
		ID:         "t1",
		Title:      "redis pipeline question",
		Content:    "how do I batch zadd calls",
		Type:       "ask",
		CreateTime: time.Now(),
	}))
	require.NoError(t, idx.Add(&TopicDocument{
		ID:         "t2",
		Title:      "release notes",
		Content:    "new version published",
		Type:       "news",
		CreateTime: time.Now(),
	}))

	hits, err := idx.Search("pipeline", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "t1", hits[0].ID)

	n, err := idx.Count()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), n)
}

func TestIndex_AddOverwrites(t *testing.T) {
	idx, err := NewMemOnly()
	require.NoError(t, err)
	defer idx.Close()

	require.NoError(t, idx.Add(&TopicDocument{ID: "t1", Title: "first title", CreateTime: time.Now()}))
	require.NoError(t, idx.Add(&TopicDocument{ID: "t1", Title: "second title", CreateTime: time.Now()}))

	n, err := idx.Count()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)

	hits, err := idx.Search("first", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
