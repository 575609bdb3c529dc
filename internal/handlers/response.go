package handlers

import (
	"encoding/json"
	"errors"

	"github.com/valyala/fasthttp"

	"marvel-backend/internal/models"
	"marvel-backend/internal/services"
	"marvel-backend/internal/utils"
)

// Сообщения для клиента. Фронтенд показывает их пользователю как есть.
const (
	msgWelcome            = "Hi"
	msgMissingParameters  = "Missing parameters"
	msgDuplicateEmail     = "Cet email est déjà pris."
	msgInvalidCredentials = "Mot de passe ou email incorrect"
	msgDuplicateLike      = "Ce nom a déjà été liké."
	msgLikeSaveFailed     = "Erreur lors de l'enregistrement des données"
	msgNotFound           = "Vous vous êtes perdu 👀"
)

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		utils.LogError("Handlers", "Ошибка кодирования ответа", err)
	}
}

func writeMessage(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, models.MessageResponse{Message: message})
}

// writeError переводит ошибку сервиса в статус и сообщение для клиента.
func writeError(ctx *fasthttp.RequestCtx, err error) {
	switch {
	case errors.Is(err, services.ErrMissingParameters):
		writeMessage(ctx, fasthttp.StatusBadRequest, msgMissingParameters)
	case errors.Is(err, services.ErrDuplicateEmail):
		writeMessage(ctx, fasthttp.StatusBadRequest, msgDuplicateEmail)
	case errors.Is(err, services.ErrDuplicateLike):
		writeMessage(ctx, fasthttp.StatusBadRequest, msgDuplicateLike)
	case errors.Is(err, services.ErrInvalidCredentials):
		writeMessage(ctx, fasthttp.StatusUnauthorized, msgInvalidCredentials)
	default:
		writeMessage(ctx, fasthttp.StatusInternalServerError, err.Error())
	}
}

// decodeBody разбирает JSON тела запроса. Битое тело считается отсутствием параметров.
func decodeBody(ctx *fasthttp.RequestCtx, component string, dst interface{}) bool {
	if err := json.Unmarshal(ctx.Request.Body(), dst); err != nil {
		utils.LogWarning(component, "Ошибка парсинга JSON: %v", err)
		writeMessage(ctx, fasthttp.StatusBadRequest, msgMissingParameters)
		return false
	}
	return true
}
