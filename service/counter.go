package service

import (
	"Forum/config"
	"Forum/dao/cache"
	"Forum/models"
	"Forum/pkg/log"
	"Forum/types"
	"context"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var _ ICounterService = (*CounterService)(nil)

// ICounterService 各类型帖子数的内存缓存
type ICounterService interface {
	Refresh(ctx context.Context) error
	Count(topicType models.TopicType) int64
	Counts() []types.TopicTypeCount
}

type CounterService struct {
	Index  *cache.TopicIndexStorage
	counts cmap.ConcurrentMap[string, int64]
}

func NewCounterService(index *cache.TopicIndexStorage) *CounterService {
	return &CounterService{
		Index:  index,
		counts: cmap.New[int64](),
	}
}

// Refresh 从 redis 重新统计, 单个类型失败不影响其他类型
func (s *CounterService) Refresh(ctx context.Context) error {
	var firstErr error
	for _, t := range models.TopicTypes {
		n, err := s.Index.TypeCount(ctx, t)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		s.counts.Set(string(t), n)
	}
	return firstErr
}

func (s *CounterService) Count(topicType models.TopicType) int64 {
	n, _ := s.counts.Get(string(topicType))
	return n
}

func (s *CounterService) Counts() []types.TopicTypeCount {
	out := make([]types.TopicTypeCount, 0, len(models.TopicTypes))
	for _, t := range models.TopicTypes {
		out = append(out, types.TopicTypeCount{Type: string(t), Count: s.Count(t)})
	}
	return out
}

// NewCounterCron 定时刷新计数, 由 server 负责 Start/Stop
func NewCounterCron(cfg *config.Config, counter ICounterService) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(cfg.Forum.CounterCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := counter.Refresh(ctx); err != nil {
			log.L.Warn("refresh topic type count error", zap.Error(err))
		}
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}
