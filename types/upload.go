package types

type UploadResponse struct {
	Success bool   `json:"success"`
	Url     string `json:"url"`
}
