package handlers

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"marvel-backend/internal/middleware"
)

// NewRouter собирает таблицу маршрутов и оборачивает её в middleware.
// Несовпадение метода отдаёт тот же 404, что и неизвестный путь.
func NewRouter(auth *AuthHandler, likes *LikeHandler, catalog *CatalogHandler) fasthttp.RequestHandler {
	r := router.New()
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.HandleMethodNotAllowed = false
	r.HandleOPTIONS = false

	r.GET("/", Welcome)

	r.GET("/marvel/characters", catalog.ListCharacters)
	r.GET("/marvel/characters/{characterId}", catalog.GetCharacter)
	r.GET("/marvel/comics", catalog.ListComics)
	r.GET("/marvel/comics/{characterId}", catalog.ListComicsByCharacter)
	r.GET("/marvel/comic/{comicId}", catalog.GetComic)

	r.POST("/user/signup", auth.Signup)
	r.POST("/user/login", auth.Login)

	r.POST("/marvel/likes", likes.CreateLike)
	r.GET("/likes/all", likes.ListAll)
	r.GET("/likes/{token}", likes.ListByToken)
	r.DELETE("/likes/deleted", likes.Delete)

	r.NotFound = NotFound

	return middleware.Chain(r.Handler, middleware.Recover, middleware.Logging, middleware.CORS)
}

func Welcome(ctx *fasthttp.RequestCtx) {
	writeMessage(ctx, fasthttp.StatusOK, msgWelcome)
}

func NotFound(ctx *fasthttp.RequestCtx) {
	writeMessage(ctx, fasthttp.StatusNotFound, msgNotFound)
}
