package handler

import (
	"Forum/config"
	"Forum/middleware"
	"Forum/service"

	"github.com/gin-gonic/gin"
)

func middlewareAuth(cfg *config.Config, tokens service.ITokenService) gin.HandlerFunc {
	return middleware.Auth([]byte(cfg.Jwt.Secret), tokens)
}
