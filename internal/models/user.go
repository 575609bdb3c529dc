package models

import "time"

type User struct {
	ID        string
	Email     string
	Hash      string
	Salt      string
	Token     string
	CreatedAt time.Time
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
