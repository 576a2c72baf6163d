package rocketmq

import (
	"Forum/config"
	"Forum/pkg/log"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

func init() {
	rlog.SetLogLevel("error")
}

// InitProducer 没有配置 nameserver 或启动失败时返回 nil, 推送降级为只记日志
func InitProducer(cfg *config.RocketMQConfig) rocketmq.Producer {
	if cfg == nil || len(cfg.NameServer) == 0 {
		log.L.Warn("rocketmq nameserver not configured, push disabled")
		return nil
	}
	retry := cfg.Producer.Retry
	if retry <= 0 {
		retry = 2
	}
	p, err := rocketmq.NewProducer(
		producer.WithNameServer(cfg.NameServer),
		producer.WithGroupName(cfg.Producer.Group),
		producer.WithRetry(retry),
	)
	if err != nil {
		log.L.Error("create rocketmq producer error", zap.Error(err))
		return nil
	}
	if err = p.Start(); err != nil {
		log.L.Error("start rocketmq producer error", zap.Error(err))
		return nil
	}
	log.L.Info("init producer success")

	return p
}
