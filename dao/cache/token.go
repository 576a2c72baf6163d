package cache

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// 三个映射在同一个脚本里写入, 并发的首次签发只会有一个 token 落地
var issueTokenScript = redis.NewScript(`
local at = redis.call('HGET', KEYS[1], ARGV[1])
if at then
	return at
end
redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
redis.call('HSET', KEYS[2], ARGV[2], ARGV[1])
redis.call('HSET', KEYS[3], ARGV[2], ARGV[3])
return ARGV[2]
`)

var resetTokenScript = redis.NewScript(`
local at = redis.call('HGET', KEYS[1], ARGV[1])
if not at then
	return 0
end
redis.call('HDEL', KEYS[1], ARGV[1])
redis.call('HDEL', KEYS[2], at)
redis.call('HDEL', KEYS[3], at)
return 1
`)

var tokenKeys = []string{KeyAccessToken, KeyAccessTokenLogin, KeyAccessTokenUser}

// AccessTokenStorage 登录名 <-> token <-> 用户ID 的双向绑定
type AccessTokenStorage struct {
	redis *redis.Client
}

func NewAccessTokenStorage(rds *redis.Client) *AccessTokenStorage {
	return &AccessTokenStorage{redis: rds}
}

// Get 登录名对应的 token, 没有时返回空串
func (a *AccessTokenStorage) Get(ctx context.Context, loginname string) (string, error) {
	at, err := a.redis.HGet(ctx, KeyAccessToken, loginname).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return at, err
}

// IssueIfAbsent 已有 token 时返回已有的, 否则以 candidate 建立三个映射
func (a *AccessTokenStorage) IssueIfAbsent(ctx context.Context, loginname, candidate string, userID int64) (string, error) {
	return issueTokenScript.Run(ctx, a.redis, tokenKeys, loginname, candidate, strconv.FormatInt(userID, 10)).Text()
}

// UserID token 对应的用户, 不存在时 ok 为 false
func (a *AccessTokenStorage) UserID(ctx context.Context, token string) (int64, bool, error) {
	v, err := a.redis.HGet(ctx, KeyAccessTokenUser, token).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	uid, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return uid, true, nil
}

// Loginname token 对应的登录名, 不存在时返回空串
func (a *AccessTokenStorage) Loginname(ctx context.Context, token string) (string, error) {
	v, err := a.redis.HGet(ctx, KeyAccessTokenLogin, token).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return v, err
}

// Reset 删除该登录名的全部映射, 返回是否存在过 token
func (a *AccessTokenStorage) Reset(ctx context.Context, loginname string) (bool, error) {
	n, err := resetTokenScript.Run(ctx, a.redis, tokenKeys, loginname).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
