package handlers

import (
	"errors"

	"github.com/valyala/fasthttp"

	"marvel-backend/internal/models"
	"marvel-backend/internal/services"
	"marvel-backend/internal/utils"
)

type LikeHandler struct {
	likeService *services.LikeService
}

func NewLikeHandler(likeService *services.LikeService) *LikeHandler {
	utils.LogSuccess("LikeHandler", "Инициализирован обработчик лайков")
	return &LikeHandler{likeService: likeService}
}

// CreateLike обрабатывает POST /marvel/likes.
func (h *LikeHandler) CreateLike(ctx *fasthttp.RequestCtx) {
	var req models.CreateLikeRequest
	if !decodeBody(ctx, "LikeHandler", &req) {
		return
	}

	like, err := h.likeService.CreateLike(ctx, req)
	if err != nil {
		if errors.Is(err, services.ErrMissingParameters) || errors.Is(err, services.ErrDuplicateLike) {
			writeError(ctx, err)
			return
		}
		writeJSON(ctx, fasthttp.StatusInternalServerError, models.ErrorDetailResponse{
			Message: msgLikeSaveFailed,
			Error:   err.Error(),
		})
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, like)
}

// ListAll обрабатывает GET /likes/all.
func (h *LikeHandler) ListAll(ctx *fasthttp.RequestCtx) {
	likes, err := h.likeService.ListAllLikes(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, likes)
}

// ListByToken обрабатывает GET /likes/{token}.
func (h *LikeHandler) ListByToken(ctx *fasthttp.RequestCtx) {
	token, _ := ctx.UserValue("token").(string)

	likes, err := h.likeService.ListLikesByToken(ctx, token)
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, likes)
}

// Delete обрабатывает DELETE /likes/deleted. Без совпадения отвечает 200 null.
func (h *LikeHandler) Delete(ctx *fasthttp.RequestCtx) {
	var req models.DeleteLikeRequest
	if !decodeBody(ctx, "LikeHandler", &req) {
		return
	}

	like, err := h.likeService.DeleteLikeByImage(ctx, req.Image)
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, like)
}
