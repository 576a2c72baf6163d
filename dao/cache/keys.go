package cache

// 索引在 redis 中的 key, 全部可以由 MySQL 数据重建
const (
	// KeyTopicUpdate 按类型的最近活跃帖子 zset, 后接类型名
	KeyTopicUpdate = "topic:update:"
	// KeyTopicUpdateAll 首页的最近活跃帖子 zset
	KeyTopicUpdateAll = "topic:update:all"
	// KeyTopicNoReply 尚无回复的提问
	KeyTopicNoReply = "topic:noreply"
	// KeyTopicTop 置顶帖子
	KeyTopicTop = "topic:top"
	// KeyTopicTag 标签下的帖子 zset, 后接标签名
	KeyTopicTag = "topic:tag:"
	// KeyTopicTagCount 标签出现次数
	KeyTopicTagCount = "topic:tag:count"
	// KeyTopicVisit 帖子浏览数
	KeyTopicVisit = "topic:visit"

	// KeyReplyCount 帖子回复数
	KeyReplyCount = "topic:reply:count"
	// KeyReplyLast 帖子最后一条回复的 id (hash)
	KeyReplyLast = "topic:reply:last"
	// KeyReplyLike 回复的点赞用户 zset, 后接回复 id
	KeyReplyLike = "topic:reply:like:"

	// KeyUserScore 用户积分
	KeyUserScore = "user:score"

	// KeyAccessToken 登录名 -> token
	KeyAccessToken = "user:at:login"
	// KeyAccessTokenLogin token -> 登录名
	KeyAccessTokenLogin = "user:at:token"
	// KeyAccessTokenUser token -> 用户ID
	KeyAccessTokenUser = "user:at:uid"

	// KeyNonce 防重放 nonce, 后接 nonce
	KeyNonce = "at:nonce:"
)

func TopicUpdateKey(topicType string) string {
	return KeyTopicUpdate + topicType
}

func TopicTagKey(tag string) string {
	return KeyTopicTag + tag
}

func ReplyLikeKey(replyID string) string {
	return KeyReplyLike + replyID
}

func NonceKey(nonce string) string {
	return KeyNonce + nonce
}
