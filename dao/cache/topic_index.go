package cache

import (
	"Forum/models"
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	scoreTopicCreate = 100
	scoreReply       = 10
)

// TopicIndexStorage 维护帖子相关的派生索引: 最近活跃列表, 标签, 回复数, 积分, 点赞.
// 一次写操作的全部变更放在一个 MULTI/EXEC 里提交.
type TopicIndexStorage struct {
	redis *redis.Client
}

func NewTopicIndexStorage(rds *redis.Client) *TopicIndexStorage {
	return &TopicIndexStorage{redis: rds}
}

// TagCount 标签及其出现次数
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func score(t time.Time) float64 {
	return float64(t.UnixMilli())
}

func uidMember(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// OnTopicCreated 新帖子的索引批次
func (s *TopicIndexStorage) OnTopicCreated(ctx context.Context, topic *models.Topic, at time.Time) error {
	_, err := s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		member := redis.Z{Score: score(at), Member: topic.ID}
		if topic.Type == models.TopicTypeAsk {
			pipe.ZAdd(ctx, KeyTopicNoReply, member)
		}
		pipe.ZAdd(ctx, TopicUpdateKey(string(topic.Type)), member)
		if topic.Type.Headline() {
			pipe.ZAdd(ctx, KeyTopicUpdateAll, member)
			pipe.ZIncrBy(ctx, KeyUserScore, scoreTopicCreate, uidMember(topic.UserID))
		}
		return nil
	})
	return err
}

// OnReplyCreated 新回复的索引批次, topic 为回复所属帖子
func (s *TopicIndexStorage) OnReplyCreated(ctx context.Context, topic *models.Topic, reply *models.TopicReply) error {
	_, err := s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		member := redis.Z{Score: score(reply.CreateTime), Member: topic.ID}
		if topic.Top {
			pipe.ZAdd(ctx, KeyTopicTop, member)
		} else {
			pipe.ZAdd(ctx, TopicUpdateKey(string(topic.Type)), member)
			if !topic.Type.QuietReply() {
				pipe.ZAdd(ctx, KeyTopicUpdateAll, member)
			}
		}
		pipe.ZRem(ctx, KeyTopicNoReply, topic.ID)
		for _, tag := range topic.Tags {
			pipe.ZAdd(ctx, TopicTagKey(NormalizeTag(tag)), member)
		}
		pipe.HSet(ctx, KeyReplyLast, topic.ID, reply.ID)
		pipe.ZIncrBy(ctx, KeyReplyCount, 1, topic.ID)
		pipe.ZIncrBy(ctx, KeyUserScore, scoreReply, uidMember(reply.UserID))
		return nil
	})
	return err
}

// ApplyTagDiff 标签变更的索引批次, added/removed 都为空时不访问 redis
func (s *TopicIndexStorage) ApplyTagDiff(ctx context.Context, topicID string, added, removed []string, at time.Time) error {
	if len(added) == 0 && len(removed) == 0 {
		return nil
	}
	_, err := s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, tag := range removed {
			pipe.ZRem(ctx, TopicTagKey(tag), topicID)
			pipe.ZIncrBy(ctx, KeyTopicTagCount, -1, tag)
		}
		for _, tag := range added {
			pipe.ZAdd(ctx, TopicTagKey(tag), redis.Z{Score: score(at), Member: topicID})
			pipe.ZIncrBy(ctx, KeyTopicTagCount, 1, tag)
		}
		return nil
	})
	return err
}

// ToggleVote 已点过则取消并返回 false, 否则记录点赞时间并返回 true
func (s *TopicIndexStorage) ToggleVote(ctx context.Context, replyID string, userID int64, at time.Time) (bool, error) {
	key := ReplyLikeKey(replyID)
	member := uidMember(userID)
	added, err := s.redis.ZAddNX(ctx, key, redis.Z{Score: score(at), Member: member}).Result()
	if err != nil {
		return false, err
	}
	if added == 1 {
		return true, nil
	}
	if err := s.redis.ZRem(ctx, key, member).Err(); err != nil {
		return false, err
	}
	return false, nil
}

func (s *TopicIndexStorage) VoteCount(ctx context.Context, replyID string) (int64, error) {
	return s.redis.ZCard(ctx, ReplyLikeKey(replyID)).Result()
}

func (s *TopicIndexStorage) zscoreInt(ctx context.Context, key, member string) (int, error) {
	v, err := s.redis.ZScore(ctx, key, member).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

func (s *TopicIndexStorage) ReplyCount(ctx context.Context, topicID string) (int, error) {
	return s.zscoreInt(ctx, KeyReplyCount, topicID)
}

func (s *TopicIndexStorage) VisitCount(ctx context.Context, topicID string) (int, error) {
	return s.zscoreInt(ctx, KeyTopicVisit, topicID)
}

func (s *TopicIndexStorage) UserScore(ctx context.Context, userID int64) (int, error) {
	return s.zscoreInt(ctx, KeyUserScore, uidMember(userID))
}

func (s *TopicIndexStorage) IncrVisit(ctx context.Context, topicID string) error {
	return s.redis.ZIncrBy(ctx, KeyTopicVisit, 1, topicID).Err()
}

// LastReplyID 没有回复时返回空串
func (s *TopicIndexStorage) LastReplyID(ctx context.Context, topicID string) (string, error) {
	id, err := s.redis.HGet(ctx, KeyReplyLast, topicID).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return id, err
}

// TopTopicIDs 置顶帖子, 最近活跃的在前
func (s *TopicIndexStorage) TopTopicIDs(ctx context.Context) ([]string, error) {
	return s.redis.ZRevRangeByScore(ctx, KeyTopicTop, &redis.ZRangeBy{
		Max: "+inf",
		Min: "0",
	}).Result()
}

// TopTags 出现次数最多的 limit 个标签, 次数为 0 的不返回
func (s *TopicIndexStorage) TopTags(ctx context.Context, limit int) ([]TagCount, error) {
	zs, err := s.redis.ZRevRangeByScoreWithScores(ctx, KeyTopicTagCount, &redis.ZRangeBy{
		Max:    "+inf",
		Min:    "(0",
		Offset: 0,
		Count:  int64(limit),
	}).Result()
	if err != nil {
		return nil, err
	}
	tags := make([]TagCount, 0, len(zs))
	for _, z := range zs {
		name, _ := z.Member.(string)
		tags = append(tags, TagCount{Name: name, Count: int(z.Score)})
	}
	return tags, nil
}

// TypeCount 某类型下的帖子数
func (s *TopicIndexStorage) TypeCount(ctx context.Context, topicType models.TopicType) (int64, error) {
	return s.redis.ZCount(ctx, TopicUpdateKey(string(topicType)), "-inf", "+inf").Result()
}
