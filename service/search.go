package service

import (
	"Forum/models"
	"Forum/pkg/log"
	"Forum/pkg/search"

	"go.uber.org/zap"
)

// ITopicSearch 全文索引, *search.Index 实现
type ITopicSearch interface {
	Add(doc *search.TopicDocument) error
	Search(query string, limit int) ([]search.Hit, error)
}

var _ ITopicSearch = (*search.Index)(nil)

// indexTopic 写全文索引, 失败只记日志
func indexTopic(idx ITopicSearch, topic *models.Topic, content string) {
	if idx == nil {
		return
	}
	err := idx.Add(&search.TopicDocument{
		ID:         topic.ID,
		Title:      topic.Title,
		Content:    content,
		Type:       string(topic.Type),
		Tags:       topic.Tags,
		UserID:     topic.UserID,
		CreateTime: topic.CreateTime,
	})
	if err != nil {
		log.L.Warn("index topic error", zap.String("topic_id", topic.ID), zap.Error(err))
	}
}
