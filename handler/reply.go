package handler

import (
	"Forum/config"
	"Forum/pkg/context"
	"Forum/pkg/response"
	"Forum/service"
	"Forum/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReplyHandler struct {
	Config       *config.Config
	ReplyService service.IReplyService
	Tokens       service.ITokenService
}

func (rh *ReplyHandler) RegisterRouter(r gin.IRouter) {
	authorize := middlewareAuth(rh.Config, rh.Tokens)
	r.POST("/v1/topics/:topicID/replies", authorize, context.Wrap(rh.Create))
	r.POST("/v1/replies/:replyID/vote", authorize, context.Wrap(rh.Vote))
}

func (rh *ReplyHandler) Create(c *gin.Context) error {
	var req types.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return service.ErrNotLogin
	}
	id, err := rh.ReplyService.Create(c.Request.Context(), userID, c.Param("topicID"), &req)
	if err != nil {
		return err
	}
	response.Success(c, types.CreateReplyResponse{ID: id})
	return nil
}

func (rh *ReplyHandler) Vote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return service.ErrNotLogin
	}
	action, err := rh.ReplyService.Vote(c.Request.Context(), userID, c.Param("replyID"))
	if err != nil {
		return err
	}
	response.Success(c, types.VoteResponse{Action: action})
	return nil
}
