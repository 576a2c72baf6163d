package handler

import (
	"Forum/config"
	"Forum/pkg/context"
	"Forum/pkg/response"
	"Forum/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	Config *config.Config
	Upload service.IUploadService
	Tokens service.ITokenService
}

func (h *UploadHandler) RegisterRouter(r gin.IRouter) {
	r.POST("/v1/upload", middlewareAuth(h.Config, h.Tokens), context.Wrap(h.Create))
}

func (h *UploadHandler) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return service.ErrNotLogin
	}
	header, err := c.FormFile("file")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "空文件")
	}
	f, err := header.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	res, err := h.Upload.Upload(c.Request.Context(), userID, f, header.Size)
	if err != nil {
		return err
	}
	response.Success(c, res)
	return nil
}
