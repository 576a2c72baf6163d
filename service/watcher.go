package service

import (
	"Forum/config"
	"Forum/dao"
	"Forum/pkg/log"
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
)

// WatcherSet 接收全部新帖通知的用户, 启动时解析, 之后只读
type WatcherSet struct {
	ids map[int64]struct{}
}

func NewWatcherSetFromIDs(ids ...int64) *WatcherSet {
	w := &WatcherSet{ids: make(map[int64]struct{}, len(ids))}
	for _, id := range ids {
		w.ids[id] = struct{}{}
	}
	return w
}

// NewWatcherSet 按配置的用户名查用户, 查不到的忽略
func NewWatcherSet(cfg *config.Config, users *dao.Users) *WatcherSet {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	w := NewWatcherSetFromIDs()
	for _, name := range cfg.Forum.WatcherNames() {
		user, err := users.FindByName(ctx, name)
		if err != nil {
			log.L.Warn("resolve global watcher error", zap.String("name", name), zap.Error(err))
			continue
		}
		if user == nil {
			log.L.Warn("global watcher not found", zap.String("name", name))
			continue
		}
		w.ids[user.ID] = struct{}{}
	}
	log.L.Info("global watchers loaded", zap.Int("count", len(w.ids)))
	return w
}

func (w *WatcherSet) Contains(userID int64) bool {
	_, ok := w.ids[userID]
	return ok
}

// IDs 升序返回
func (w *WatcherSet) IDs() []int64 {
	ids := make([]int64, 0, len(w.ids))
	for id := range w.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (w *WatcherSet) Len() int {
	return len(w.ids)
}
