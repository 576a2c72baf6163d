package service

import (
	"Forum/dao"
	"Forum/dao/cache"
	"Forum/models"
	"Forum/pkg/log"
	"Forum/pkg/utils"
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
)

var _ ITokenService = (*TokenService)(nil)

// ITokenService 客户端 accesstoken 和请求防重放
type ITokenService interface {
	// IssueOrGet 每个登录名最多一个 token, 并发首次签发也只会落地一个
	IssueOrGet(ctx context.Context, profile *models.UserProfile) (string, error)
	IssueForUser(ctx context.Context, userID int64) (*models.UserProfile, string, error)
	// Resolve token 对应的用户 id, 不存在时 ok 为 false
	Resolve(ctx context.Context, token string) (int64, bool, error)
	Reset(ctx context.Context, loginname string) error
	ResetForUser(ctx context.Context, userID int64) error
	// CheckNonce 时间戳超出窗口, 格式不对或 nonce 已用过时返回 false
	CheckNonce(ctx context.Context, nonce, timestamp string) bool
}

type TokenService struct {
	ProfileDAO *dao.UserProfile
	Tokens     *cache.AccessTokenStorage
	Nonces     *cache.NonceStorage
}

func (s *TokenService) IssueOrGet(ctx context.Context, profile *models.UserProfile) (string, error) {
	at, err := s.Tokens.Get(ctx, profile.Loginname)
	if err != nil {
		return "", fmt.Errorf("get access token: %w", err)
	}
	if at != "" {
		return at, nil
	}
	return s.Tokens.IssueIfAbsent(ctx, profile.Loginname, utils.UU32(), profile.UserID)
}

func (s *TokenService) IssueForUser(ctx context.Context, userID int64) (*models.UserProfile, string, error) {
	if userID < 1 {
		return nil, "", ErrNotLogin
	}
	profile, err := s.ProfileDAO.FindByUserID(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if profile == nil || profile.Loginname == "" {
		return nil, "", ErrNotLogin
	}
	at, err := s.IssueOrGet(ctx, profile)
	if err != nil {
		return nil, "", err
	}
	return profile, at, nil
}

func (s *TokenService) Resolve(ctx context.Context, token string) (int64, bool, error) {
	if token == "" {
		return 0, false, nil
	}
	return s.Tokens.UserID(ctx, token)
}

func (s *TokenService) Reset(ctx context.Context, loginname string) error {
	ok, err := s.Tokens.Reset(ctx, loginname)
	if err != nil {
		return err
	}
	if ok {
		log.L.Info("access token reset", zap.String("loginname", loginname))
	}
	return nil
}

func (s *TokenService) ResetForUser(ctx context.Context, userID int64) error {
	profile, err := s.ProfileDAO.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrNotLogin
	}
	return s.Reset(ctx, profile.Loginname)
}

func (s *TokenService) CheckNonce(ctx context.Context, nonce, timestamp string) bool {
	t, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return false
	}
	if time.Now().UnixMilli()-t > cache.NonceWindow.Milliseconds() {
		return false
	}
	ok, err := s.Nonces.Claim(ctx, nonce)
	if err != nil {
		log.L.Warn("claim nonce error", zap.Error(err))
		return false
	}
	return ok
}
