package handler

import (
	"Forum/config"
	"Forum/pkg/context"
	"Forum/pkg/response"
	"Forum/service"
	"Forum/types"

	"github.com/gin-gonic/gin"
)

// TokenHandler 网页端登录后给客户端换取 accesstoken
type TokenHandler struct {
	Config *config.Config
	Tokens service.ITokenService
}

func (h *TokenHandler) RegisterRouter(r gin.IRouter) {
	authorize := middlewareAuth(h.Config, h.Tokens)
	r.POST("/v1/accesstoken", authorize, context.Wrap(h.Issue))
	r.DELETE("/v1/accesstoken", authorize, context.Wrap(h.Reset))
}

func (h *TokenHandler) Issue(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return service.ErrNotLogin
	}
	profile, at, err := h.Tokens.IssueForUser(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, types.AccessTokenResponse{AccessToken: at, Loginname: profile.Loginname})
	return nil
}

func (h *TokenHandler) Reset(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return service.ErrNotLogin
	}
	if err := h.Tokens.ResetForUser(c.Request.Context(), userID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
