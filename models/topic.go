package models

import (
	"time"

	"gorm.io/datatypes"
)

// TopicType 帖子类型
type TopicType string

const (
	TopicTypeAsk     TopicType = "ask"
	TopicTypeNews    TopicType = "news"
	TopicTypeShare   TopicType = "share"
	TopicTypeJob     TopicType = "job"
	TopicTypeNb      TopicType = "nb"
	TopicTypeShortit TopicType = "shortit"
)

// TopicTypes 全部类型, 计数刷新时按这个顺序遍历
var TopicTypes = []TopicType{
	TopicTypeAsk,
	TopicTypeNews,
	TopicTypeShare,
	TopicTypeJob,
	TopicTypeNb,
	TopicTypeShortit,
}

func (t TopicType) Valid() bool {
	for _, v := range TopicTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Headline 新帖进入首页列表, 作者加分, 通知全局关注者
func (t TopicType) Headline() bool {
	return t == TopicTypeAsk || t == TopicTypeNews
}

// QuietReply 回复不刷新首页列表
func (t TopicType) QuietReply() bool {
	return t == TopicTypeNb || t == TopicTypeShortit
}

// Topic 帖子表, 正文存放在 t_big_content 或 oss 里
type Topic struct {
	ID         string                      `gorm:"primaryKey;size:32" json:"id"`
	Title      string                      `gorm:"size:1024;not null" json:"title"`
	ContentID  string                      `gorm:"size:64" json:"content_id"`
	Type       TopicType                   `gorm:"size:16;index;not null" json:"type"`
	UserID     int64                       `gorm:"index;not null" json:"user_id"`
	Tags       datatypes.JSONSlice[string] `json:"tags"`
	Top        bool                        `gorm:"default:false" json:"top"`
	Lock       bool                        `gorm:"default:false" json:"lock"`
	CreateTime time.Time                   `gorm:"index" json:"create_time"`
	UpdateTime time.Time                   `gorm:"autoUpdateTime" json:"update_time"`
}

func (Topic) TableName() string {
	return "t_topic"
}

// TagSet 帖子当前的标签集合
func (t *Topic) TagSet() map[string]struct{} {
	set := make(map[string]struct{}, len(t.Tags))
	for _, tag := range t.Tags {
		set[tag] = struct{}{}
	}
	return set
}
