package server

import (
	"Forum/handler"
)

type Handlers struct {
	Topic  *handler.TopicHandler
	Reply  *handler.ReplyHandler
	Token  *handler.TokenHandler
	Upload *handler.UploadHandler
}
