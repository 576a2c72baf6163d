package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NonceWindow nonce 的有效窗口, 同一个 nonce 在窗口内只能使用一次
const NonceWindow = 10 * time.Minute

type NonceStorage struct {
	redis *redis.Client
}

func NewNonceStorage(rds *redis.Client) *NonceStorage {
	return &NonceStorage{redis: rds}
}

// Claim 首次占用返回 true, 重放返回 false
func (n *NonceStorage) Claim(ctx context.Context, nonce string) (bool, error) {
	return n.redis.SetNX(ctx, NonceKey(nonce), "", NonceWindow).Result()
}
