package service

import (
	"Forum/dao"
	"Forum/dao/cache"
	"Forum/models"
	"Forum/pkg/log"
	"Forum/pkg/snowflake"
	"Forum/types"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

var _ IReplyService = (*ReplyService)(nil)

type IReplyService interface {
	// Create 回复帖子, 返回回复 id
	Create(ctx context.Context, userID int64, topicID string, req *types.CreateReplyRequest) (string, error)
	// Vote 点赞开关, 返回 types.VoteUp 或 types.VoteDown
	Vote(ctx context.Context, userID int64, replyID string) (string, error)
	VoteCount(ctx context.Context, replyID string) (int64, error)
}

type ReplyService struct {
	TopicDAO *dao.Topic
	ReplyDAO *dao.TopicReply
	Index    *cache.TopicIndexStorage
	Content  IContentService
	Search   ITopicSearch
	Notice   INoticeService
}

func (s *ReplyService) Create(ctx context.Context, userID int64, topicID string, req *types.CreateReplyRequest) (string, error) {
	if userID < 1 {
		return "", ErrNotLogin
	}
	raw := strings.TrimSpace(req.Content)
	if raw == "" {
		return "", ErrReplyEmpty
	}
	topic, err := s.TopicDAO.FindById(ctx, topicID)
	if err != nil {
		return "", fmt.Errorf("find topic: %w", err)
	}
	if topic == nil {
		return "", ErrTopicNotFound
	}
	if topic.Lock {
		return "", ErrTopicLocked
	}

	contentID, err := s.Content.Put(ctx, s.Content.Filter(raw))
	if err != nil {
		return "", err
	}
	reply := &models.TopicReply{
		ID:         snowflake.GenStringID(),
		TopicID:    topic.ID,
		UserID:     userID,
		ContentID:  contentID,
		CreateTime: time.Now(),
	}
	if err := s.ReplyDAO.Create(ctx, reply); err != nil {
		return "", fmt.Errorf("create reply: %w", err)
	}

	s.refreshSearch(ctx, topic)

	if err := s.Index.OnReplyCreated(ctx, topic, reply); err != nil {
		log.L.Error("reply index batch error",
			zap.String("topic_id", topic.ID),
			zap.String("reply_id", reply.ID),
			zap.Error(err),
		)
	}

	s.Notice.NotifyReply(topic, userID, raw)
	return reply.ID, nil
}

// refreshSearch 重建父帖的全文索引, 失败只记日志
func (s *ReplyService) refreshSearch(ctx context.Context, topic *models.Topic) {
	if s.Search == nil {
		return
	}
	content, err := s.Content.Get(ctx, topic.ContentID)
	if err != nil {
		log.L.Warn("load topic content error", zap.String("topic_id", topic.ID), zap.Error(err))
		return
	}
	indexTopic(s.Search, topic, content)
}

func (s *ReplyService) Vote(ctx context.Context, userID int64, replyID string) (string, error) {
	if userID < 1 {
		return "", ErrNotLogin
	}
	exist, err := s.ReplyDAO.IsExist(ctx, "id = ?", replyID)
	if err != nil {
		return "", fmt.Errorf("find reply: %w", err)
	}
	if !exist {
		return "", ErrReplyNotFound
	}
	up, err := s.Index.ToggleVote(ctx, replyID, userID, time.Now())
	if err != nil {
		return "", fmt.Errorf("toggle vote: %w", err)
	}
	if up {
		return types.VoteUp, nil
	}
	return types.VoteDown, nil
}

func (s *ReplyService) VoteCount(ctx context.Context, replyID string) (int64, error) {
	return s.Index.VoteCount(ctx, replyID)
}
