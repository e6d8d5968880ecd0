package httpadapter

import (
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func TestApplyCORSHeaders(t *testing.T) {
	ctx := &app.RequestContext{}
	applyCORSHeaders(ctx, "")

	if got, want := string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")), "*"; got != want {
		t.Fatalf("allow-origin mismatch: got=%q want=%q", got, want)
	}
	if got, want := string(ctx.Response.Header.Peek("Access-Control-Allow-Methods")), corsAllowMethods; got != want {
		t.Fatalf("allow-methods mismatch: got=%q want=%q", got, want)
	}
}

func TestApplyCORSHeaders_ConfiguredOrigin(t *testing.T) {
	ctx := &app.RequestContext{}
	applyCORSHeaders(ctx, "http://localhost:5173")

	if got, want := string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")), "http://localhost:5173"; got != want {
		t.Fatalf("allow-origin mismatch: got=%q want=%q", got, want)
	}
}

func TestPreflightShortCircuits(t *testing.T) {
	engine, _ := newTestEngine(t, nil)
	w := ut.PerformRequest(engine, consts.MethodOptions, "/api/build/confirm", nil)
	if got, want := w.Result().StatusCode(), consts.StatusNoContent; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
}
