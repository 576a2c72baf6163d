package dao

import "github.com/google/wire"

var ProviderSet = wire.NewSet(
	NewTopic,
	NewTopicReply,
	NewUsers,
	NewUserProfile,
	NewBigContent,
)
