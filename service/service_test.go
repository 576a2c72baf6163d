package service

import (
	"context"
	"sync"
	"testing"

	"Forum/dao"
	"Forum/dao/cache"
	"Forum/models"
	"Forum/pkg/async"
	"Forum/pkg/database"
	"Forum/pkg/search"

	"github.com/alicebob/miniredis/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type sentAlert struct {
	UserID int64
	Alert  string
	Title  string
	Extras map[string]string
}

// recordingPusher 记录所有推送, 可以指定某个用户推送失败
type recordingPusher struct {
	mu     sync.Mutex
	alerts []sentAlert
	failOn map[int64]error
}

func (p *recordingPusher) Alert(_ context.Context, userID int64, alert, title string, extras map[string]string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err, ok := p.failOn[userID]; ok {
		return err
	}
	p.alerts = append(p.alerts, sentAlert{UserID: userID, Alert: alert, Title: title, Extras: extras})
	return nil
}

func (p *recordingPusher) sent() []sentAlert {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]sentAlert(nil), p.alerts...)
}

type testEnv struct {
	db       *gorm.DB
	mr       *miniredis.Miniredis
	index    *cache.TopicIndexStorage
	queue    *async.Queue
	pusher   *recordingPusher
	search   *search.Index
	users    *dao.Users
	profiles *dao.UserProfile
	counter  *CounterService
	topics   *TopicService
	replies  *ReplyService
	tokens   *TokenService
}

func newTestEnv(t *testing.T, watchers ...int64) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库每个连接是独立的库
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	idx, err := search.NewMemOnly()
	require.NoError(t, err)

	queue := async.NewQueue(2, 64)
	t.Cleanup(func() {
		queue.Close()
		_ = idx.Close()
		_ = rdb.Close()
		_ = sqlDB.Close()
	})

	env := &testEnv{
		db:       db,
		mr:       mr,
		index:    cache.NewTopicIndexStorage(rdb),
		queue:    queue,
		pusher:   &recordingPusher{failOn: map[int64]error{}},
		search:   idx,
		users:    dao.NewUsers(db),
		profiles: dao.NewUserProfile(db),
	}
	content := &ContentService{
		policy: bluemonday.UGCPolicy(),
		store:  &dbBlobStore{repo: dao.NewBigContent(db)},
	}
	notice := &NoticeService{
		Users:    env.users,
		Push:     env.pusher,
		Queue:    queue,
		Watchers: NewWatcherSetFromIDs(watchers...),
	}
	env.counter = NewCounterService(env.index)
	env.topics = &TopicService{
		TopicDAO:   dao.NewTopic(db),
		ReplyDAO:   dao.NewTopicReply(db),
		ProfileDAO: env.profiles,
		Index:      env.index,
		Content:    content,
		Search:     idx,
		Notice:     notice,
		Counter:    env.counter,
		Queue:      queue,
	}
	env.replies = &ReplyService{
		TopicDAO: env.topics.TopicDAO,
		ReplyDAO: env.topics.ReplyDAO,
		Index:    env.index,
		Content:  content,
		Search:   idx,
		Notice:   notice,
	}
	env.tokens = &TokenService{
		ProfileDAO: env.profiles,
		Tokens:     cache.NewAccessTokenStorage(rdb),
		Nonces:     cache.NewNonceStorage(rdb),
	}
	return env
}

// addUser 建用户和对应资料
func (e *testEnv) addUser(t *testing.T, name, nickname string) *models.User {
	t.Helper()
	ctx := context.Background()
	u := &models.User{Name: name}
	require.NoError(t, e.users.Create(ctx, u))
	require.NoError(t, e.profiles.Create(ctx, &models.UserProfile{
		UserID:    u.ID,
		Loginname: name,
		Nickname:  nickname,
	}))
	return u
}
