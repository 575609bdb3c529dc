package handlers

import (
	"github.com/valyala/fasthttp"

	"marvel-backend/internal/models"
	"marvel-backend/internal/services"
	"marvel-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	utils.LogSuccess("AuthHandler", "Инициализирован обработчик аутентификации")
	return &AuthHandler{authService: authService}
}

// Signup обрабатывает POST /user/signup.
func (h *AuthHandler) Signup(ctx *fasthttp.RequestCtx) {
	var req models.SignupRequest
	if !decodeBody(ctx, "AuthHandler", &req) {
		return
	}

	token, err := h.authService.Signup(ctx, req.Email, req.Password)
	if err != nil {
		writeError(ctx, err)
		return
	}

	writeJSON(ctx, fasthttp.StatusCreated, models.TokenResponse{Token: token})
}

// Login обрабатывает POST /user/login.
func (h *AuthHandler) Login(ctx *fasthttp.RequestCtx) {
	var req models.LoginRequest
	if !decodeBody(ctx, "AuthHandler", &req) {
		return
	}

	token, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeError(ctx, err)
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, models.TokenResponse{Token: token})
}
