package service

import (
	"Forum/dao"
	"Forum/models"
	"Forum/pkg/log"
	"context"

	"go.uber.org/zap"
)

// ProfileCache 一次批量填充内复用的作者资料, 由调用方创建和持有, 不跨请求共享
type ProfileCache struct {
	repo     *dao.UserProfile
	profiles map[int64]*models.UserProfile
}

func NewProfileCache(repo *dao.UserProfile) *ProfileCache {
	return &ProfileCache{
		repo:     repo,
		profiles: make(map[int64]*models.UserProfile),
	}
}

// Get 未命中时查库, 查不到的也记下来避免重复查询
func (c *ProfileCache) Get(ctx context.Context, userID int64) *models.UserProfile {
	if p, ok := c.profiles[userID]; ok {
		return p
	}
	p, err := c.repo.FindByUserID(ctx, userID)
	if err != nil {
		log.L.Warn("load user profile error", zap.Int64("user_id", userID), zap.Error(err))
		return nil
	}
	c.profiles[userID] = p
	return p
}

func (c *ProfileCache) Len() int {
	return len(c.profiles)
}
