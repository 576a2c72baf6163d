package service

import (
	"Forum/dao"
	"Forum/models"
	"Forum/pkg/async"
	"Forum/pkg/log"
	"Forum/types"
	"context"
	"fmt"
	"html"
	"strconv"

	"go.uber.org/zap"
)

var _ INoticeService = (*NoticeService)(nil)

// INoticeService 回复/@/新帖通知, 全部在后台队列执行
type INoticeService interface {
	NotifyReply(topic *models.Topic, replierID int64, content string)
	NotifyNewTopic(topic *models.Topic)
}

type NoticeService struct {
	Users    *dao.Users
	Push     IPushService
	Queue    *async.Queue
	Watchers *WatcherSet
}

func (s *NoticeService) NotifyReply(topic *models.Topic, replierID int64, content string) {
	t := *topic
	s.Queue.Submit("notify_reply", func(ctx context.Context) error {
		return s.notifyReply(ctx, &t, replierID, content)
	})
}

func (s *NoticeService) notifyReply(ctx context.Context, topic *models.Topic, replierID int64, content string) error {
	replier, err := s.Users.FindById(ctx, replierID)
	if err != nil {
		return err
	}
	if replier == nil {
		return fmt.Errorf("replier %d not found", replierID)
	}

	// 楼主
	if topic.UserID != replierID {
		s.send(ctx, topic.UserID, replier.Name+"回复了您的帖子", topic, replier.Name, types.PushTypeReply)
	}

	// @ 到的人, 楼主和回复者自己除外
	for _, name := range FindAt(content, MentionLimit) {
		user, err := s.Users.FindByNameFold(ctx, name)
		if err != nil {
			log.L.Warn("find mentioned user error", zap.String("name", name), zap.Error(err))
			continue
		}
		if user == nil || user.ID == topic.UserID || user.ID == replierID {
			continue
		}
		s.send(ctx, user.ID, replier.Name+"在帖子回复中@了你", topic, replier.Name, types.PushTypeAt)
	}
	return nil
}

func (s *NoticeService) NotifyNewTopic(topic *models.Topic) {
	if s.Watchers == nil || s.Watchers.Len() == 0 {
		return
	}
	t := *topic
	s.Queue.Submit("notify_new_topic", func(ctx context.Context) error {
		return s.notifyNewTopic(ctx, &t)
	})
}

func (s *NoticeService) notifyNewTopic(ctx context.Context, topic *models.Topic) error {
	author, err := s.Users.FindById(ctx, topic.UserID)
	if err != nil {
		return err
	}
	postUser := ""
	if author != nil {
		postUser = author.Name
	}
	alert := "新帖:" + html.UnescapeString(topic.Title)
	for _, id := range s.Watchers.IDs() {
		if id == topic.UserID {
			continue
		}
		s.send(ctx, id, alert, topic, postUser, types.PushTypeReply)
	}
	return nil
}

// send 推送失败只记日志, 不影响其他接收人
func (s *NoticeService) send(ctx context.Context, userID int64, alert string, topic *models.Topic, postUser string, pushType int) {
	title := html.UnescapeString(topic.Title)
	extras := map[string]string{
		"topic_id":    topic.ID,
		"post_user":   postUser,
		"topic_title": title,
		"type":        strconv.Itoa(pushType),
	}
	if err := s.Push.Alert(ctx, userID, alert, title, extras); err != nil {
		log.L.Warn("push alert error",
			zap.Int64("user_id", userID),
			zap.String("topic_id", topic.ID),
			zap.Error(err),
		)
	}
}
