package models

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorDetailResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
