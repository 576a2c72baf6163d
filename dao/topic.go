package dao

import (
	"Forum/models"
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Topic struct {
	Repo[models.Topic]
}

func NewTopic(db *gorm.DB) *Topic {
	return &Topic{
		Repo: NewRepo[models.Topic](db),
	}
}

// CountByTitle 标题精确匹配(区分大小写)
func (d *Topic) CountByTitle(ctx context.Context, title string) (int64, error) {
	return d.QueryCount(ctx, "title = ?", title)
}

func (d *Topic) UpdateTags(ctx context.Context, topicID string, tags []string) error {
	return d.Db.WithContext(ctx).
		Model(&models.Topic{}).
		Where("id = ?", topicID).
		Update("tags", datatypes.NewJSONSlice(tags)).Error
}

// FindByUser 用户发过的帖子, 按创建时间倒序
func (d *Topic) FindByUser(ctx context.Context, userID int64, offset, limit int) ([]*models.Topic, int64, error) {
	var topics []*models.Topic
	total, err := d.QueryCount(ctx, "user_id = ?", userID)
	if err != nil {
		return nil, 0, err
	}
	err = d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("create_time DESC").
		Offset(offset).
		Limit(limit).
		Find(&topics).Error
	return topics, total, err
}

func (d *Topic) FindByIDs(ctx context.Context, ids []string) ([]*models.Topic, error) {
	var topics []*models.Topic
	if len(ids) == 0 {
		return topics, nil
	}
	err := d.Db.WithContext(ctx).Where("id IN ?", ids).Find(&topics).Error
	return topics, err
}
