package handlers

import (
	"context"
	"encoding/json"

	"github.com/valyala/fasthttp"

	"marvel-backend/internal/services"
	"marvel-backend/internal/utils"
)

type CatalogHandler struct {
	catalog *services.CatalogService
}

func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	utils.LogSuccess("CatalogHandler", "Инициализирован прокси каталога")
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListCharacters(ctx *fasthttp.RequestCtx) {
	h.proxy(ctx, h.catalog.ListCharacters)
}

func (h *CatalogHandler) ListComics(ctx *fasthttp.RequestCtx) {
	h.proxy(ctx, h.catalog.ListComics)
}

func (h *CatalogHandler) GetCharacter(ctx *fasthttp.RequestCtx) {
	id := pathParam(ctx, "characterId")
	h.proxy(ctx, func(c context.Context) (json.RawMessage, error) {
		return h.catalog.GetCharacterByID(c, id)
	})
}

func (h *CatalogHandler) ListComicsByCharacter(ctx *fasthttp.RequestCtx) {
	id := pathParam(ctx, "characterId")
	h.proxy(ctx, func(c context.Context) (json.RawMessage, error) {
		return h.catalog.GetComicsByCharacterID(c, id)
	})
}

func (h *CatalogHandler) GetComic(ctx *fasthttp.RequestCtx) {
	id := pathParam(ctx, "comicId")
	h.proxy(ctx, func(c context.Context) (json.RawMessage, error) {
		return h.catalog.GetComicByID(c, id)
	})
}

// proxy отдаёт тело ответа каталога без изменений.
func (h *CatalogHandler) proxy(ctx *fasthttp.RequestCtx, fetch func(context.Context) (json.RawMessage, error)) {
	body, err := fetch(ctx)
	if err != nil {
		utils.LogError("CatalogHandler", "Ошибка запроса к каталогу "+string(ctx.Path()), err)
		writeError(ctx, err)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func pathParam(ctx *fasthttp.RequestCtx, name string) string {
	v, _ := ctx.UserValue(name).(string)
	return v
}
