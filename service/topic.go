package service

import (
	"Forum/dao"
	"Forum/dao/cache"
	"Forum/models"
	"Forum/pkg/async"
	"Forum/pkg/log"
	"Forum/pkg/snowflake"
	"Forum/types"
	"context"
	"fmt"
	"html"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const (
	titleMinLen = 5
	titleMaxLen = 1024
	maxTags     = 10
	topTagLimit = 20
)

var _ ITopicService = (*TopicService)(nil)

type ITopicService interface {
	// Create 发帖, 返回帖子 id
	Create(ctx context.Context, userID int64, req *types.CreateTopicRequest) (string, error)
	// UpdateTags 整体替换帖子标签, 帖子不存在或参数不合法时返回 false
	UpdateTags(ctx context.Context, topicID string, tags []string) (bool, error)
	Get(ctx context.Context, topicID string) (*types.TopicView, error)
	FillTopic(ctx context.Context, topic *models.Topic, profiles *ProfileCache) (*types.TopicView, error)
	FetchTop(ctx context.Context) ([]*types.TopicView, error)
	FetchTopTags(ctx context.Context) ([]types.TopTag, error)
	RecentTopics(ctx context.Context, userID int64, page, size int) (*types.TopicListResponse, error)
	RecentReplyTopics(ctx context.Context, userID int64, page, size int) (*types.TopicListResponse, error)
	UserScore(ctx context.Context, userID int64) (int, error)
	Visit(ctx context.Context, topicID string) error
	// Check 长轮询: 回复数没变化时返回 nil
	Check(ctx context.Context, topicID string, replies int) (*types.CheckResponse, error)
	SearchTopics(ctx context.Context, query string, limit int) ([]*types.TopicView, error)
}

type TopicService struct {
	TopicDAO   *dao.Topic
	ReplyDAO   *dao.TopicReply
	ProfileDAO *dao.UserProfile
	Index      *cache.TopicIndexStorage
	Content    IContentService
	Search     ITopicSearch
	Notice     INoticeService
	Counter    ICounterService
	Queue      *async.Queue
}

func (s *TopicService) Create(ctx context.Context, userID int64, req *types.CreateTopicRequest) (string, error) {
	if userID < 1 {
		return "", ErrNotLogin
	}
	title := strings.TrimSpace(req.Title)
	if n := utf8.RuneCountInString(title); n < titleMinLen || n > titleMaxLen {
		return "", ErrTitleLength
	}
	if strings.TrimSpace(req.Content) == "" {
		return "", ErrContentInvalid
	}
	if len(req.Tags) > maxTags {
		return "", ErrTooManyTags
	}
	topicType := models.TopicType(strings.TrimSpace(req.Type))
	if topicType == "" {
		topicType = models.TopicTypeAsk
	}
	if !topicType.Valid() {
		return "", ErrTopicType
	}

	// 库里存的是转义后的标题
	title = html.EscapeString(title)
	count, err := s.TopicDAO.CountByTitle(ctx, title)
	if err != nil {
		return "", fmt.Errorf("count topic title: %w", err)
	}
	if count > 0 {
		return "", ErrDuplicateTitle
	}

	content := s.Content.Filter(req.Content)
	contentID, err := s.Content.Put(ctx, content)
	if err != nil {
		return "", err
	}

	now := time.Now()
	topic := &models.Topic{
		ID:         snowflake.GenStringID(),
		Title:      title,
		ContentID:  contentID,
		Type:       topicType,
		UserID:     userID,
		Tags:       datatypes.JSONSlice[string]{},
		CreateTime: now,
	}
	if err := s.TopicDAO.Create(ctx, topic); err != nil {
		return "", fmt.Errorf("create topic: %w", err)
	}

	indexTopic(s.Search, topic, content)

	// 主表已提交, 索引失败只记日志
	if err := s.Index.OnTopicCreated(ctx, topic, now); err != nil {
		log.L.Error("topic index batch error", zap.String("topic_id", topic.ID), zap.Error(err))
	}

	if topic.Type.Headline() {
		s.Notice.NotifyNewTopic(topic)
	}
	s.Queue.Submit("topic_type_count", s.Counter.Refresh)

	return topic.ID, nil
}

func (s *TopicService) UpdateTags(ctx context.Context, topicID string, tags []string) (bool, error) {
	if strings.TrimSpace(topicID) == "" || tags == nil {
		return false, nil
	}
	next := cache.NormalizeTags(tags)
	if len(next) > maxTags {
		return false, nil
	}
	topic, err := s.TopicDAO.FindById(ctx, topicID)
	if err != nil {
		return false, fmt.Errorf("find topic: %w", err)
	}
	if topic == nil {
		return false, nil
	}

	added, removed := cache.DiffTags(cache.NormalizeTags(topic.Tags), next)
	if err := s.TopicDAO.UpdateTags(ctx, topic.ID, next); err != nil {
		return false, fmt.Errorf("update topic tags: %w", err)
	}

	at := topic.CreateTime
	if last, err := s.lastReply(ctx, topic.ID); err != nil {
		log.L.Warn("load last reply error", zap.String("topic_id", topic.ID), zap.Error(err))
	} else if last != nil {
		at = last.CreateTime
	}

	if err := s.Index.ApplyTagDiff(ctx, topic.ID, added, removed, at); err != nil {
		log.L.Error("tag index batch error", zap.String("topic_id", topic.ID), zap.Error(err))
	}
	return true, nil
}

func (s *TopicService) lastReply(ctx context.Context, topicID string) (*models.TopicReply, error) {
	id, err := s.Index.LastReplyID(ctx, topicID)
	if err != nil || id == "" {
		return nil, err
	}
	return s.ReplyDAO.FindById(ctx, id)
}

func (s *TopicService) Get(ctx context.Context, topicID string) (*types.TopicView, error) {
	topic, err := s.TopicDAO.FindById(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, ErrTopicNotFound
	}
	return s.FillTopic(ctx, topic, NewProfileCache(s.ProfileDAO))
}

// FillTopic 填充作者, 回复数, 最后回复和浏览数. profiles 为 nil 时不加载作者
func (s *TopicService) FillTopic(ctx context.Context, topic *models.Topic, profiles *ProfileCache) (*types.TopicView, error) {
	view := &types.TopicView{
		ID:         topic.ID,
		Title:      topic.Title,
		Type:       string(topic.Type),
		UserID:     ownerID(topic.UserID),
		Tags:       []string(topic.Tags),
		Top:        topic.Top,
		Lock:       topic.Lock,
		CreateTime: topic.CreateTime,
	}
	if view.Tags == nil {
		view.Tags = []string{}
	}
	view.Author = profileView(ctx, profiles, view.UserID)

	var err error
	if view.ReplyCount, err = s.Index.ReplyCount(ctx, topic.ID); err != nil {
		return nil, fmt.Errorf("reply count: %w", err)
	}
	if view.ReplyCount > 0 {
		reply, err := s.lastReply(ctx, topic.ID)
		if err != nil {
			return nil, fmt.Errorf("last reply: %w", err)
		}
		if reply != nil {
			uid := ownerID(reply.UserID)
			view.LastReply = &types.LastReply{
				ID:         reply.ID,
				UserID:     uid,
				Author:     profileView(ctx, profiles, uid),
				CreateTime: reply.CreateTime,
			}
		}
	}
	if view.VisitCount, err = s.Index.VisitCount(ctx, topic.ID); err != nil {
		return nil, fmt.Errorf("visit count: %w", err)
	}
	return view, nil
}

// 历史数据里 user_id 为 0 的记到 1 号用户
func ownerID(userID int64) int64 {
	if userID == 0 {
		return 1
	}
	return userID
}

func profileView(ctx context.Context, profiles *ProfileCache, userID int64) *types.UserProfile {
	if profiles == nil {
		return nil
	}
	p := profiles.Get(ctx, userID)
	if p == nil {
		return nil
	}
	return &types.UserProfile{
		UserID:    p.UserID,
		Loginname: p.Loginname,
		Nickname:  p.Nickname,
		Avatar:    p.Avatar,
	}
}

// fillOrdered 按 ids 的顺序填充, 库里已不存在的帖子跳过
func (s *TopicService) fillOrdered(ctx context.Context, ids []string) ([]*types.TopicView, error) {
	topics, err := s.TopicDAO.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*models.Topic, len(topics))
	for _, t := range topics {
		byID[t.ID] = t
	}
	profiles := NewProfileCache(s.ProfileDAO)
	views := make([]*types.TopicView, 0, len(ids))
	for _, id := range ids {
		t, ok := byID[id]
		if !ok {
			continue
		}
		v, err := s.FillTopic(ctx, t, profiles)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (s *TopicService) FetchTop(ctx context.Context) ([]*types.TopicView, error) {
	ids, err := s.Index.TopTopicIDs(ctx)
	if err != nil {
		return nil, err
	}
	return s.fillOrdered(ctx, ids)
}

func (s *TopicService) FetchTopTags(ctx context.Context) ([]types.TopTag, error) {
	counts, err := s.Index.TopTags(ctx, topTagLimit)
	if err != nil {
		return nil, err
	}
	tags := make([]types.TopTag, 0, len(counts))
	for _, c := range counts {
		tags = append(tags, types.TopTag{Name: c.Name, Count: c.Count})
	}
	return tags, nil
}

func pageBounds(page, size int) (offset, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	if size > 100 {
		size = 100
	}
	return (page - 1) * size, size
}

func (s *TopicService) RecentTopics(ctx context.Context, userID int64, page, size int) (*types.TopicListResponse, error) {
	offset, limit := pageBounds(page, size)
	topics, total, err := s.TopicDAO.FindByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	profiles := NewProfileCache(s.ProfileDAO)
	views := make([]*types.TopicView, 0, len(topics))
	for _, t := range topics {
		v, err := s.FillTopic(ctx, t, profiles)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return &types.TopicListResponse{Topics: views, Total: total}, nil
}

func (s *TopicService) RecentReplyTopics(ctx context.Context, userID int64, page, size int) (*types.TopicListResponse, error) {
	offset, limit := pageBounds(page, size)
	ids, total, err := s.ReplyDAO.RepliedTopicIDs(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	views, err := s.fillOrdered(ctx, ids)
	if err != nil {
		return nil, err
	}
	return &types.TopicListResponse{Topics: views, Total: total}, nil
}

func (s *TopicService) UserScore(ctx context.Context, userID int64) (int, error) {
	return s.Index.UserScore(ctx, userID)
}

func (s *TopicService) Visit(ctx context.Context, topicID string) error {
	return s.Index.IncrVisit(ctx, topicID)
}

func (s *TopicService) Check(ctx context.Context, topicID string, replies int) (*types.CheckResponse, error) {
	topic, err := s.TopicDAO.FindById(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, nil
	}
	count, err := s.Index.ReplyCount(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if count == replies {
		return nil, nil
	}

	nickname := ""
	reply, err := s.lastReply(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if reply != nil {
		if p := NewProfileCache(s.ProfileDAO).Get(ctx, ownerID(reply.UserID)); p != nil {
			nickname = p.Nickname
		}
	}
	return &types.CheckResponse{
		Count:   count,
		Data:    nickname + " 回复了帖子:" + topic.Title,
		Options: types.CheckOptions{Tag: topicID},
	}, nil
}

// SearchTopics 全文检索, 按相关度排序
func (s *TopicService) SearchTopics(ctx context.Context, query string, limit int) ([]*types.TopicView, error) {
	if s.Search == nil || strings.TrimSpace(query) == "" {
		return []*types.TopicView{}, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	hits, err := s.Search.Search(query, limit)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.ID)
	}
	return s.fillOrdered(ctx, ids)
}
