package cache

import (
	"context"
	"testing"
	"time"

	"Forum/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicIndexStorage_OnTopicCreated(t *testing.T) {
	ctx := context.Background()
	at := time.UnixMilli(1_700_000_000_000)

	t.Run("ask goes to noreply and global", func(t *testing.T) {
		mr, rdb := newTestRedis(t)
		s := NewTopicIndexStorage(rdb)

		topic := &models.Topic{ID: "t1", Type: models.TopicTypeAsk, UserID: 7}
		require.NoError(t, s.OnTopicCreated(ctx, topic, at))

		for _, key := range []string{KeyTopicNoReply, TopicUpdateKey("ask"), KeyTopicUpdateAll} {
			got, err := mr.ZScore(key, "t1")
			require.NoError(t, err, key)
			assert.Equal(t, float64(at.UnixMilli()), got, key)
		}
		score, err := s.UserScore(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, 100, score)
	})

	t.Run("share stays in its own list", func(t *testing.T) {
		mr, rdb := newTestRedis(t)
		s := NewTopicIndexStorage(rdb)

		topic := &models.Topic{ID: "t2", Type: models.TopicTypeShare, UserID: 7}
		require.NoError(t, s.OnTopicCreated(ctx, topic, at))

		assert.True(t, mr.Exists(TopicUpdateKey("share")))
		assert.False(t, mr.Exists(KeyTopicNoReply))
		assert.False(t, mr.Exists(KeyTopicUpdateAll))
		score, err := s.UserScore(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, 0, score)
	})
}

func TestTopicIndexStorage_OnReplyCreated(t *testing.T) {
	ctx := context.Background()
	replyAt := time.UnixMilli(1_700_000_500_000)

	t.Run("regular topic", func(t *testing.T) {
		mr, rdb := newTestRedis(t)
		s := NewTopicIndexStorage(rdb)

		topic := &models.Topic{ID: "t1", Type: models.TopicTypeAsk, UserID: 1, Tags: []string{"Go", "redis"}}
		require.NoError(t, s.OnTopicCreated(ctx, topic, replyAt.Add(-time.Hour)))

		reply := &models.TopicReply{ID: "r1", TopicID: "t1", UserID: 2, CreateTime: replyAt}
		require.NoError(t, s.OnReplyCreated(ctx, topic, reply))

		assert.False(t, mr.Exists(KeyTopicNoReply))
		for _, key := range []string{TopicUpdateKey("ask"), KeyTopicUpdateAll, TopicTagKey("go"), TopicTagKey("redis")} {
			got, err := mr.ZScore(key, "t1")
			require.NoError(t, err, key)
			assert.Equal(t, float64(replyAt.UnixMilli()), got, key)
		}
		assert.False(t, mr.Exists(KeyTopicTop))

		last, err := s.LastReplyID(ctx, "t1")
		require.NoError(t, err)
		assert.Equal(t, "r1", last)

		count, err := s.ReplyCount(ctx, "t1")
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		score, err := s.UserScore(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 10, score)
	})

	t.Run("pinned topic only bumps top list", func(t *testing.T) {
		mr, rdb := newTestRedis(t)
		s := NewTopicIndexStorage(rdb)

		topic := &models.Topic{ID: "t1", Type: models.TopicTypeNews, Top: true}
		reply := &models.TopicReply{ID: "r1", TopicID: "t1", UserID: 2, CreateTime: replyAt}
		require.NoError(t, s.OnReplyCreated(ctx, topic, reply))

		got, err := mr.ZScore(KeyTopicTop, "t1")
		require.NoError(t, err)
		assert.Equal(t, float64(replyAt.UnixMilli()), got)
		assert.False(t, mr.Exists(TopicUpdateKey("news")))
		assert.False(t, mr.Exists(KeyTopicUpdateAll))
	})

	t.Run("nb replies do not reach global list", func(t *testing.T) {
		mr, rdb := newTestRedis(t)
		s := NewTopicIndexStorage(rdb)

		for _, tt := range []models.TopicType{models.TopicTypeNb, models.TopicTypeShortit} {
			topic := &models.Topic{ID: "t-" + string(tt), Type: tt}
			reply := &models.TopicReply{ID: "r-" + string(tt), UserID: 2, CreateTime: replyAt}
			require.NoError(t, s.OnReplyCreated(ctx, topic, reply))
			assert.True(t, mr.Exists(TopicUpdateKey(string(tt))))
		}
		assert.False(t, mr.Exists(KeyTopicUpdateAll))
	})
}

func TestTopicIndexStorage_ApplyTagDiff(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newTestRedis(t)
	s := NewTopicIndexStorage(rdb)
	at := time.UnixMilli(1_700_000_000_000)

	require.NoError(t, s.ApplyTagDiff(ctx, "t1", []string{"go", "redis"}, nil, at))
	require.NoError(t, s.ApplyTagDiff(ctx, "t2", []string{"go"}, nil, at))
	require.NoError(t, s.ApplyTagDiff(ctx, "t1", []string{"mysql"}, []string{"redis"}, at))

	members, err := mr.ZMembers(TopicTagKey("go"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"t1", "t2"}, members)
	assert.False(t, mr.Exists(TopicTagKey("redis")))

	tags, err := s.TopTags(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, []TagCount{{Name: "go", Count: 2}, {Name: "mysql", Count: 1}}, tags)

	before := mr.CommandCount()
	require.NoError(t, s.ApplyTagDiff(ctx, "t1", nil, nil, at))
	assert.Equal(t, before, mr.CommandCount())
}

func TestTopicIndexStorage_ToggleVote(t *testing.T) {
	ctx := context.Background()
	_, rdb := newTestRedis(t)
	s := NewTopicIndexStorage(rdb)
	now := time.Now()

	up, err := s.ToggleVote(ctx, "r1", 5, now)
	require.NoError(t, err)
	assert.True(t, up)

	n, err := s.VoteCount(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	up, err = s.ToggleVote(ctx, "r1", 5, now)
	require.NoError(t, err)
	assert.False(t, up)

	n, err = s.VoteCount(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestTopicIndexStorage_Reads(t *testing.T) {
	ctx := context.Background()
	_, rdb := newTestRedis(t)
	s := NewTopicIndexStorage(rdb)

	count, err := s.ReplyCount(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	last, err := s.LastReplyID(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, "", last)

	require.NoError(t, s.IncrVisit(ctx, "t1"))
	require.NoError(t, s.IncrVisit(ctx, "t1"))
	visits, err := s.VisitCount(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, 2, visits)

	at := time.Now()
	for i, id := range []string{"a", "b"} {
		topic := &models.Topic{ID: id, Type: models.TopicTypeAsk, UserID: int64(i + 1)}
		require.NoError(t, s.OnTopicCreated(ctx, topic, at))
	}
	n, err := s.TypeCount(ctx, models.TopicTypeAsk)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
