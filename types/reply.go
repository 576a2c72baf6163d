package types

type CreateReplyRequest struct {
	Content string `json:"content"`
}

type CreateReplyResponse struct {
	ID string `json:"id"`
}

const (
	VoteUp   = "up"
	VoteDown = "down"
)

type VoteResponse struct {
	Action string `json:"action"`
}
