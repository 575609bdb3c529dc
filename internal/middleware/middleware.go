package middleware

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"

	"marvel-backend/internal/utils"
)

const (
	corsAllowMethods = "GET,HEAD,PUT,PATCH,POST,DELETE"
	corsAllowHeaders = "Content-Type,Authorization"
)

// Chain применяет middleware так, что первый в списке оказывается внешним.
func Chain(h fasthttp.RequestHandler, mws ...func(fasthttp.RequestHandler) fasthttp.RequestHandler) fasthttp.RequestHandler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// Recover превращает панику обработчика в ответ 500, процесс продолжает работу.
func Recover(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		defer func() {
			if r := recover(); r != nil {
				utils.LogError("Middleware", fmt.Sprintf("Паника в обработчике %s %s", ctx.Method(), ctx.Path()), fmt.Errorf("%v", r))
				ctx.Response.Reset()
				ctx.SetStatusCode(fasthttp.StatusInternalServerError)
				ctx.SetContentType("application/json")
				_ = json.NewEncoder(ctx).Encode(map[string]string{
					"message": fmt.Sprint(r),
				})
			}
		}()
		next(ctx)
	}
}

// CORS разрешает любой origin; preflight OPTIONS отвечает 204 без вызова маршрутов.
func CORS(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		ctx.Response.Header.Set(fasthttp.HeaderAccessControlAllowOrigin, "*")

		if ctx.IsOptions() {
			ctx.Response.Header.Set(fasthttp.HeaderAccessControlAllowMethods, corsAllowMethods)
			requested := ctx.Request.Header.Peek(fasthttp.HeaderAccessControlRequestHeaders)
			if len(requested) > 0 {
				ctx.Response.Header.SetBytesV(fasthttp.HeaderAccessControlAllowHeaders, requested)
			} else {
				ctx.Response.Header.Set(fasthttp.HeaderAccessControlAllowHeaders, corsAllowHeaders)
			}
			ctx.SetStatusCode(fasthttp.StatusNoContent)
			return
		}

		next(ctx)
	}
}

func Logging(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		startTime := time.Now()
		path := string(ctx.Path())

		utils.LogRequest(string(ctx.Method()), path, "")
		next(ctx)
		utils.LogResponse(path, ctx.Response.StatusCode(), time.Since(startTime))
	}
}
