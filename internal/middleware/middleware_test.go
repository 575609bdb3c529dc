package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

func newCtx(method, uri string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	return ctx
}

func TestRecover_TurnsPanicInto500(t *testing.T) {
	h := Recover(func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusOK)
		panic("boom")
	})

	ctx := newCtx(fasthttp.MethodGet, "/likes/all")
	assert.NotPanics(t, func() { h(ctx) })

	assert.Equal(t, fasthttp.StatusInternalServerError, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"message":"boom"}`, string(ctx.Response.Body()))
}

func TestRecover_PassThrough(t *testing.T) {
	h := Recover(func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusCreated)
	})

	ctx := newCtx(fasthttp.MethodPost, "/user/signup")
	h(ctx)
	assert.Equal(t, fasthttp.StatusCreated, ctx.Response.StatusCode())
}

func TestCORS_Preflight(t *testing.T) {
	called := false
	h := CORS(func(ctx *fasthttp.RequestCtx) { called = true })

	ctx := newCtx(fasthttp.MethodOptions, "/marvel/likes")
	ctx.Request.Header.Set(fasthttp.HeaderAccessControlRequestHeaders, "content-type")
	h(ctx)

	assert.False(t, called)
	assert.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())
	assert.Equal(t, "*", string(ctx.Response.Header.Peek(fasthttp.HeaderAccessControlAllowOrigin)))
	assert.Equal(t, corsAllowMethods, string(ctx.Response.Header.Peek(fasthttp.HeaderAccessControlAllowMethods)))
	assert.Equal(t, "content-type", string(ctx.Response.Header.Peek(fasthttp.HeaderAccessControlAllowHeaders)))
}

func TestCORS_SimpleRequest(t *testing.T) {
	called := false
	h := CORS(func(ctx *fasthttp.RequestCtx) { called = true })

	ctx := newCtx(fasthttp.MethodGet, "/")
	h(ctx)

	assert.True(t, called)
	assert.Equal(t, "*", string(ctx.Response.Header.Peek(fasthttp.HeaderAccessControlAllowOrigin)))
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
			return func(ctx *fasthttp.RequestCtx) {
				order = append(order, name)
				next(ctx)
			}
		}
	}

	h := Chain(func(ctx *fasthttp.RequestCtx) { order = append(order, "handler") }, mw("outer"), mw("inner"))
	h(newCtx(fasthttp.MethodGet, "/"))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestLogging_KeepsResponse(t *testing.T) {
	h := Logging(func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusTeapot)
	})

	ctx := newCtx(fasthttp.MethodGet, "/x")
	h(ctx)
	assert.Equal(t, fasthttp.StatusTeapot, ctx.Response.StatusCode())
}
