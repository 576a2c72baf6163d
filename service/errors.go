package service

import (
	"Forum/pkg/response"
	"net/http"
)

// 业务校验错误, 调用方用 errors.Is 判断
var (
	ErrNotLogin       = response.NewError(http.StatusUnauthorized, "请先登录")
	ErrTitleLength    = response.NewError(http.StatusBadRequest, "标题长度不合法")
	ErrContentInvalid = response.NewError(http.StatusBadRequest, "内容不合法")
	ErrTooManyTags    = response.NewError(http.StatusBadRequest, "最多只能有10个tag")
	ErrTopicType      = response.NewError(http.StatusBadRequest, "帖子类型不合法")
	ErrDuplicateTitle = response.NewError(http.StatusBadRequest, "相同标题已经发过了")

	ErrReplyEmpty    = response.NewError(http.StatusBadRequest, "内容不能为空")
	ErrTopicNotFound = response.NewError(http.StatusNotFound, "主题不存在")
	ErrTopicLocked   = response.NewError(http.StatusForbidden, "该帖子已经锁定,不能回复")
	ErrReplyNotFound = response.NewError(http.StatusNotFound, "没这条评论")

	ErrEmptyFile    = response.NewError(http.StatusBadRequest, "空文件")
	ErrFileTooLarge = response.NewError(http.StatusBadRequest, "文件太大了")

	ErrAccessToken = response.NewError(http.StatusUnauthorized, "accesstoken 无效")
	ErrNonce       = response.NewError(http.StatusForbidden, "nonce 校验失败")
)
