package handlers

import (
	"context"

	"VidTube.com/cmd/api/handlers/common"
	"VidTube.com/cmd/model"
	"VidTube.com/cmd/relation/service"
	"VidTube.com/pkg/paginate"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type SubscriptionService interface {
	ToggleSubscription(ctx context.Context, actor, channelID int64) (bool, error)
	ListSubscribers(ctx context.Context, channelID int64, p paginate.Params) (*paginate.Page[*model.Subscription], error)
	ListSubscribedChannels(ctx context.Context, subscriberID int64, p paginate.Params) (*paginate.Page[*model.Subscription], error)
}

var _ SubscriptionService = (*service.SubscriptionService)(nil)

type SubscriptionHandler struct {
	subs SubscriptionService
}

func NewSubscriptionHandler(subs SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subs: subs}
}

func (h *SubscriptionHandler) ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	channelID, err := common.PathID(c, "channelId", "channelId")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	actor, err := common.ActorID(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	subscribed, err := h.subs.ToggleSubscription(ctx, actor, channelID)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	if subscribed {
		common.SendResponse(c, consts.StatusCreated, utils.H{"isSubscribed": true}, "Subscribed successfully")
		return
	}
	common.SendResponse(c, consts.StatusOK, utils.H{"isSubscribed": false}, "Unsubscribed successfully")
}

func (h *SubscriptionHandler) ListSubscribers(ctx context.Context, c *app.RequestContext) {
	channelID, err := common.PathID(c, "channelId", "channelId")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	page, err := h.subs.ListSubscribers(ctx, channelID, common.Params(c))
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusOK, page, "Subscribers fetched successfully")
}

func (h *SubscriptionHandler) ListSubscribedChannels(ctx context.Context, c *app.RequestContext) {
	subscriberID, err := common.PathID(c, "subscriberId", "subscriberId")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	page, err := h.subs.ListSubscribedChannels(ctx, subscriberID, common.Params(c))
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusOK, page, "Subscribed channels fetched successfully")
}
