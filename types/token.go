package types

type AccessTokenResponse struct {
	AccessToken string `json:"accesstoken"`
	Loginname   string `json:"loginname"`
}
