package handler

import (
	"Forum/config"
	"Forum/pkg/context"
	"Forum/pkg/response"
	"Forum/service"
	"Forum/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	Config       *config.Config
	TopicService service.ITopicService
	Counter      service.ICounterService
	Tokens       service.ITokenService
}

func (th *TopicHandler) RegisterRouter(r gin.IRouter) {
	authorize := middlewareAuth(th.Config, th.Tokens)
	topics := r.Group("/v1/topics")
	topics.GET("/top", context.Wrap(th.Top))              // 置顶帖
	topics.GET("/tags", context.Wrap(th.TopTags))         // 热门标签
	topics.GET("/counts", context.Wrap(th.Counts))        // 各类型帖子数
	topics.GET("/search", context.Wrap(th.Search))        // 全文检索
	topics.GET("/:topicID", context.Wrap(th.Detail))      // 帖子详情, 顺带记一次浏览
	topics.GET("/:topicID/check", context.Wrap(th.Check)) // 长轮询新回复
	topics.POST("", authorize, context.Wrap(th.Create))   // 发帖
	topics.PUT("/:topicID/tags", authorize, context.Wrap(th.UpdateTags))

	users := r.Group("/v1/users")
	users.GET("/:userID/topics", context.Wrap(th.UserTopics))
	users.GET("/:userID/replies", context.Wrap(th.UserReplyTopics))
	users.GET("/:userID/score", context.Wrap(th.UserScore))
}

func (th *TopicHandler) Create(c *gin.Context) error {
	var req types.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return service.ErrNotLogin
	}
	id, err := th.TopicService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, types.CreateTopicResponse{ID: id})
	return nil
}

func (th *TopicHandler) UpdateTags(c *gin.Context) error {
	var req types.UpdateTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	ok, err := th.TopicService.UpdateTags(c.Request.Context(), c.Param("topicID"), req.Tags)
	if err != nil {
		return err
	}
	if !ok {
		return response.NewError(http.StatusBadRequest, "更新标签失败")
	}
	response.Success(c, nil)
	return nil
}

func (th *TopicHandler) Detail(c *gin.Context) error {
	topicID := c.Param("topicID")
	view, err := th.TopicService.Get(c.Request.Context(), topicID)
	if err != nil {
		return err
	}
	// 浏览数失败不影响详情
	_ = th.TopicService.Visit(c.Request.Context(), topicID)
	response.Success(c, view)
	return nil
}

func (th *TopicHandler) Check(c *gin.Context) error {
	replies, _ := strconv.Atoi(c.Query("replies"))
	res, err := th.TopicService.Check(c.Request.Context(), c.Param("topicID"), replies)
	if err != nil {
		return err
	}
	response.Success(c, res)
	return nil
}

func (th *TopicHandler) Top(c *gin.Context) error {
	list, err := th.TopicService.FetchTop(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, list)
	return nil
}

func (th *TopicHandler) TopTags(c *gin.Context) error {
	tags, err := th.TopicService.FetchTopTags(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, tags)
	return nil
}

func (th *TopicHandler) Counts(c *gin.Context) error {
	response.Success(c, th.Counter.Counts())
	return nil
}

func (th *TopicHandler) Search(c *gin.Context) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	list, err := th.TopicService.SearchTopics(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, "搜索失败: "+err.Error())
	}
	response.Success(c, list)
	return nil
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	return page, size
}

func userIDParam(c *gin.Context) (int64, error) {
	uid, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil || uid < 1 {
		return 0, response.NewError(http.StatusBadRequest, "用户id不合法")
	}
	return uid, nil
}

func (th *TopicHandler) UserTopics(c *gin.Context) error {
	uid, err := userIDParam(c)
	if err != nil {
		return err
	}
	page, size := pageParams(c)
	res, err := th.TopicService.RecentTopics(c.Request.Context(), uid, page, size)
	if err != nil {
		return err
	}
	response.Success(c, res)
	return nil
}

func (th *TopicHandler) UserReplyTopics(c *gin.Context) error {
	uid, err := userIDParam(c)
	if err != nil {
		return err
	}
	page, size := pageParams(c)
	res, err := th.TopicService.RecentReplyTopics(c.Request.Context(), uid, page, size)
	if err != nil {
		return err
	}
	response.Success(c, res)
	return nil
}

func (th *TopicHandler) UserScore(c *gin.Context) error {
	uid, err := userIDParam(c)
	if err != nil {
		return err
	}
	score, err := th.TopicService.UserScore(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"score": score})
	return nil
}
