package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"isocity/internal/app/buildmode"
	"isocity/internal/app/journal"
	"isocity/internal/app/ports"
	"isocity/internal/app/status"
	"isocity/internal/app/upkeep"
	"isocity/internal/domain/building"
	"isocity/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/cloudwego/hertz/pkg/route"
)

type Handler struct {
	BuildUC   buildmode.UseCase
	UpkeepUC  upkeep.UseCase
	StatusUC  status.UseCase
	JournalUC journal.UseCase
	KPI       kpiSnapshotProvider
	Limiter   *ClientLimiter
	// AllowOrigin is sent as Access-Control-Allow-Origin; empty means "*".
	AllowOrigin string
}

// RegisterRoutes mounts the API on any hertz router (server.Hertz embeds
// *route.Engine).
func (h Handler) RegisterRoutes(r *route.Engine) {
	r.Use(corsMiddleware(h.AllowOrigin))
	r.OPTIONS("/*path", func(context.Context, *app.RequestContext) {})

	api := r.Group("/api", rateLimitMiddleware(h.Limiter))
	build := api.Group("/build")
	build.POST("/enter", h.enter)
	build.POST("/hover", h.hover)
	build.POST("/confirm", h.confirm)
	build.POST("/cancel", h.cancel)
	build.GET("/preview", h.preview)

	cityGroup := api.Group("/city")
	cityGroup.GET("/status", h.status)
	cityGroup.POST("/time", h.setTime)
	cityGroup.GET("/journal", h.journal)

	api.GET("/catalog", h.catalog)
	r.GET("/ops/kpi", h.kpi)
}

type enterRequest struct {
	BuildingType string `json:"building_type"`
}

type hoverRequest struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

type timeRequest struct {
	Paused *bool  `json:"paused"`
	Speed  string `json:"speed"`
}

func (h Handler) enter(c context.Context, ctx *app.RequestContext) {
	var body enterRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.BuildUC.Enter(c, buildmode.EnterRequest{BuildingType: body.BuildingType})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) hover(c context.Context, ctx *app.RequestContext) {
	var body hoverRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if (body.X == nil) != (body.Y == nil) {
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "x and y must be given together")
		return
	}
	var req buildmode.HoverRequest
	if body.X != nil {
		req.Pos = &world.Point{X: *body.X, Y: *body.Y}
	}
	resp, err := h.BuildUC.Hover(c, req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) confirm(c context.Context, ctx *app.RequestContext) {
	resp, err := h.BuildUC.Confirm(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	// A rejected placement is an answered request, not a transport error.
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) cancel(c context.Context, ctx *app.RequestContext) {
	resp, err := h.BuildUC.Cancel(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) preview(c context.Context, ctx *app.RequestContext) {
	resp, err := h.BuildUC.Preview(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) setTime(c context.Context, ctx *app.RequestContext) {
	var body timeRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.UpkeepUC.SetTime(c, upkeep.TimeRequest{Paused: body.Paused, Speed: body.Speed})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) journal(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	occurredFrom, _ := strconv.ParseInt(string(ctx.Query("occurred_from")), 10, 64)
	occurredTo, _ := strconv.ParseInt(string(ctx.Query("occurred_to")), 10, 64)
	resp, err := h.JournalUC.Execute(c, journal.Request{
		Limit:        limit,
		Kind:         string(ctx.Query("kind")),
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) catalog(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{"buildings": building.Catalog()})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, buildmode.ErrUnknownBuildingType):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_building_type", err.Error())
	case errors.Is(err, buildmode.ErrNotInBuildMode):
		writeErrorBody(ctx, consts.StatusConflict, "not_in_build_mode", err.Error())
	case errors.Is(err, upkeep.ErrInvalidRequest),
		errors.Is(err, journal.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
