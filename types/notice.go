package types

// 推送通知类型
const (
	PushTypeReply = 1
	PushTypeAt    = 2
)

// PushMessage 投递给推送通道的消息
type PushMessage struct {
	UserID int64             `json:"user_id"`
	Alert  string            `json:"alert"`
	Title  string            `json:"title"`
	Extras map[string]string `json:"extras"`
	SentAt int64             `json:"sent_at"`
}
