package middleware

import (
	"net/http"
	"strings"
	"time"

	"Forum/pkg/context"
	"Forum/pkg/jwt"
	"Forum/pkg/log"
	"Forum/pkg/response"
	"Forum/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 客户端接口使用的请求头
const (
	HeaderAccessToken = "accesstoken"
	HeaderNonce       = "Api-Nonce"
	HeaderTime        = "Api-Time"
)

// Auth 网页端用 Bearer jwt, 客户端用 accesstoken + nonce + time
func Auth(secret []byte, tokens service.ITokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			bearer(c, secret, authHeader)
			return
		}
		at := c.GetHeader(HeaderAccessToken)
		if at == "" {
			at = c.Query(HeaderAccessToken)
		}
		if at == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}
		accessToken(c, tokens, at)
	}
}

func bearer(c *gin.Context, secret []byte, authHeader string) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
		return
	}

	claims, err := jwt.ParseToken(secret, "access", parts[1])
	if err != nil {
		response.Abort(c, http.StatusUnauthorized, err.Error())
		return
	}
	// 快过期时下发新 token
	if time.Until(claims.ExpiresAt.Time) < 20*time.Second {
		newToken, err := jwt.GenerateToken(secret, claims.UserID, "access", time.Hour)
		if err == nil {
			c.Header("X-New-Access-Token", newToken)
		}
	}
	c.Set(context.CtxUserID, claims.UserID)
	c.Next()
}

func accessToken(c *gin.Context, tokens service.ITokenService, at string) {
	ctx := c.Request.Context()
	if !tokens.CheckNonce(ctx, c.GetHeader(HeaderNonce), c.GetHeader(HeaderTime)) {
		response.Abort(c, http.StatusForbidden, "nonce 校验失败")
		return
	}
	uid, ok, err := tokens.Resolve(ctx, at)
	if err != nil {
		log.L.Error("resolve access token error", zap.Error(err))
		response.Abort(c, http.StatusInternalServerError, "系统繁忙")
		return
	}
	if !ok {
		response.Abort(c, http.StatusUnauthorized, "accesstoken 无效")
		return
	}
	c.Set(context.CtxUserID, uid)
	c.Next()
}
