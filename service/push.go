package service

import (
	"Forum/config"
	"Forum/pkg/log"
	"Forum/types"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"go.uber.org/zap"
)

var _ IPushService = (*PushService)(nil)

// IPushService 给单个用户发推送
type IPushService interface {
	Alert(ctx context.Context, userID int64, alert, title string, extras map[string]string) error
}

// PushService 把推送消息投递到 rocketmq, 由推送网关消费
type PushService struct {
	Producer rocketmq.Producer
	Topic    string
}

func NewPushService(producer rocketmq.Producer, cfg *config.RocketMQConfig) *PushService {
	s := &PushService{Producer: producer}
	if cfg != nil {
		s.Topic = cfg.PushTopic
	}
	return s
}

func (s *PushService) Alert(ctx context.Context, userID int64, alert, title string, extras map[string]string) error {
	if s.Producer == nil || s.Topic == "" {
		log.L.Info("push skipped",
			zap.Int64("user_id", userID),
			zap.String("alert", alert),
		)
		return nil
	}

	body, err := json.Marshal(&types.PushMessage{
		UserID: userID,
		Alert:  alert,
		Title:  title,
		Extras: extras,
		SentAt: time.Now().UnixMilli(),
	})
	if err != nil {
		return err
	}

	msg := primitive.NewMessage(s.Topic, body)
	msg.WithKeys([]string{strconv.FormatInt(userID, 10)})
	if typ, ok := extras["type"]; ok {
		msg.WithTag("push_" + typ)
	}

	res, err := s.Producer.SendSync(ctx, msg)
	if err != nil {
		return fmt.Errorf("send push message: %w", err)
	}
	if res.Status != primitive.SendOK {
		return fmt.Errorf("send push message: status %d", res.Status)
	}
	return nil
}
