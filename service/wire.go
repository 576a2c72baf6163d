package service

import (
	"Forum/config"
	"Forum/pkg/async"
	"Forum/pkg/search"

	"github.com/google/wire"
)

// NewQueue 通知和计数刷新共用的后台队列
func NewQueue(cfg *config.Config) *async.Queue {
	return async.NewQueue(cfg.Forum.Workers, cfg.Forum.QueueSize)
}

func NewSearchIndex(cfg *config.Config) (*search.Index, error) {
	return search.Open(cfg.Search.Path)
}

var ProviderSet = wire.NewSet(
	NewQueue,
	NewSearchIndex,
	wire.Bind(new(ITopicSearch), new(*search.Index)),

	NewContentService,
	NewWatcherSet,

	NewPushService,
	wire.Bind(new(IPushService), new(*PushService)),

	wire.Struct(new(NoticeService), "*"),
	wire.Bind(new(INoticeService), new(*NoticeService)),

	NewCounterService,
	wire.Bind(new(ICounterService), new(*CounterService)),
	NewCounterCron,

	wire.Struct(new(TopicService), "*"),
	wire.Bind(new(ITopicService), new(*TopicService)),

	wire.Struct(new(ReplyService), "*"),
	wire.Bind(new(IReplyService), new(*ReplyService)),

	wire.Struct(new(TokenService), "*"),
	wire.Bind(new(ITokenService), new(*TokenService)),

	NewUploadService,
	wire.Bind(new(IUploadService), new(*UploadService)),
)
