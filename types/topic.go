package types

import "time"

// CreateTopicRequest 发帖请求, Tags 只参与数量校验, 创建后标签总是为空
type CreateTopicRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Type    string   `json:"type"`
	Tags    []string `json:"tags"`
}

type CreateTopicResponse struct {
	ID string `json:"id"`
}

type UpdateTagsRequest struct {
	Tags []string `json:"tags"`
}

// UserProfile 作者展示信息
type UserProfile struct {
	UserID    int64  `json:"user_id"`
	Loginname string `json:"loginname"`
	Nickname  string `json:"nickname"`
	Avatar    string `json:"avatar"`
}

// LastReply 帖子最后一条回复
type LastReply struct {
	ID         string       `json:"id"`
	UserID     int64        `json:"user_id"`
	Author     *UserProfile `json:"author,omitempty"`
	CreateTime time.Time    `json:"create_time"`
}

// TopicView 填充了作者和统计信息的帖子
type TopicView struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Type       string       `json:"type"`
	UserID     int64        `json:"user_id"`
	Tags       []string     `json:"tags"`
	Top        bool         `json:"top"`
	Lock       bool         `json:"lock"`
	CreateTime time.Time    `json:"create_time"`
	Author     *UserProfile `json:"author,omitempty"`
	ReplyCount int          `json:"reply_count"`
	VisitCount int          `json:"visit_count"`
	LastReply  *LastReply   `json:"last_reply,omitempty"`
}

type TopicListResponse struct {
	Topics []*TopicView `json:"topics"`
	Total  int64        `json:"total"`
}

type TopTag struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CheckResponse 长轮询时帖子有新回复的提示
type CheckResponse struct {
	Count   int          `json:"count"`
	Data    string       `json:"data"`
	Options CheckOptions `json:"options"`
}

type CheckOptions struct {
	Tag string `json:"tag"`
}

type TopicTypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}
