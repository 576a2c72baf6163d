//go:build wireinject
// +build wireinject

package main

import (
	"Forum/config"
	"Forum/dao"
	"Forum/dao/cache"
	"Forum/handler"
	"Forum/pkg/client"
	"Forum/pkg/database"
	"Forum/pkg/oss"
	"Forum/pkg/rocketmq"
	"Forum/pkg/server"
	"Forum/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, error) {
	wire.Build(
		client.NewRedisClient,
		database.NewDB,
		config.ProvideOssConfig,
		oss.NewClient,
		config.ProvideRocketMQConfig,
		rocketmq.InitProducer,

		dao.ProviderSet,
		cache.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.TopicHandler), "*"),
		wire.Struct(new(handler.ReplyHandler), "*"),
		wire.Struct(new(handler.TokenHandler), "*"),
		wire.Struct(new(handler.UploadHandler), "*"),

		server.NewGinEngine,
		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil, nil
}
