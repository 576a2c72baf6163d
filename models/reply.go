package models

import "time"

// TopicReply 帖子回复
type TopicReply struct {
	ID         string    `gorm:"primaryKey;size:32" json:"id"`
	TopicID    string    `gorm:"size:32;index;not null" json:"topic_id"`
	UserID     int64     `gorm:"index;not null" json:"user_id"`
	ContentID  string    `gorm:"size:64" json:"content_id"`
	CreateTime time.Time `gorm:"index" json:"create_time"`
}

func (TopicReply) TableName() string {
	return "t_topic_reply"
}
