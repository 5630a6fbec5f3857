package handlers

import (
	"context"

	"VidTube.com/cmd/api/handlers/common"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type DashboardHandler struct {
	dashboard DashboardService
}

func NewDashboardHandler(dashboard DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Stats(ctx context.Context, c *app.RequestContext) {
	actor, err := common.ActorID(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	stats, err := h.dashboard.Stats(ctx, actor)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusOK, stats, "Channel stats fetched successfully")
}

func (h *DashboardHandler) Videos(ctx context.Context, c *app.RequestContext) {
	actor, err := common.ActorID(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	page, err := h.dashboard.Videos(ctx, actor, common.Params(c))
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusOK, page, "Channel videos fetched successfully")
}
