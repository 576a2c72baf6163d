package dao

import (
	"Forum/models"
	"context"

	"gorm.io/gorm"
)

type TopicReply struct {
	Repo[models.TopicReply]
}

func NewTopicReply(db *gorm.DB) *TopicReply {
	return &TopicReply{
		Repo: NewRepo[models.TopicReply](db),
	}
}

// RepliedTopicIDs 用户回复过的帖子 id, 按最近回复时间倒序去重
func (d *TopicReply) RepliedTopicIDs(ctx context.Context, userID int64, offset, limit int) ([]string, int64, error) {
	var total int64
	err := d.Db.WithContext(ctx).
		Model(&models.TopicReply{}).
		Where("user_id = ?", userID).
		Distinct("topic_id").
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var ids []string
	err = d.Db.WithContext(ctx).
		Model(&models.TopicReply{}).
		Select("topic_id").
		Where("user_id = ?", userID).
		Group("topic_id").
		Order("MAX(create_time) DESC").
		Offset(offset).
		Limit(limit).
		Pluck("topic_id", &ids).Error
	return ids, total, err
}
