package handlers

import (
	"context"

	"VidTube.com/cmd/api/handlers/common"
	"VidTube.com/cmd/model"
	"VidTube.com/cmd/tweet/service"
	"VidTube.com/pkg/paginate"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type TweetService interface {
	CreateTweet(ctx context.Context, actor int64, content string) (*model.Tweet, error)
	ListUserTweets(ctx context.Context, userID int64, p paginate.Params) (*paginate.Page[*model.Tweet], error)
	UpdateTweet(ctx context.Context, actor, id int64, content string) (*model.Tweet, error)
	DeleteTweet(ctx context.Context, actor, id int64) error
}

var _ TweetService = (*service.TweetService)(nil)

type TweetParam struct {
	Content string `json:"content" form:"content"`
}

type TweetHandler struct {
	tweets TweetService
}

func NewTweetHandler(tweets TweetService) *TweetHandler {
	return &TweetHandler{tweets: tweets}
}

func (h *TweetHandler) CreateTweet(ctx context.Context, c *app.RequestContext) {
	actor, err := common.ActorID(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	var param TweetParam
	if err := c.Bind(&param); err != nil {
		hlog.CtxInfof(ctx, "bind tweet body: %v", err)
	}
	tweet, err := h.tweets.CreateTweet(ctx, actor, param.Content)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusCreated, tweet, "Tweet created successfully")
}

func (h *TweetHandler) ListUserTweets(ctx context.Context, c *app.RequestContext) {
	userID, err := common.PathID(c, "userId", "user ID")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	page, err := h.tweets.ListUserTweets(ctx, userID, common.Params(c))
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusOK, page, "User tweets fetched successfully")
}

func (h *TweetHandler) UpdateTweet(ctx context.Context, c *app.RequestContext) {
	id, err := common.PathID(c, "tweetId", "tweet ID")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	actor, err := common.ActorID(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	var param TweetParam
	if err := c.Bind(&param); err != nil {
		hlog.CtxInfof(ctx, "bind tweet body: %v", err)
	}
	tweet, err := h.tweets.UpdateTweet(ctx, actor, id, param.Content)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusOK, tweet, "Tweet updated successfully")
}

func (h *TweetHandler) DeleteTweet(ctx context.Context, c *app.RequestContext) {
	id, err := common.PathID(c, "tweetId", "tweet ID")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	actor, err := common.ActorID(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	if err := h.tweets.DeleteTweet(ctx, actor, id); err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusOK, common.Empty, "Tweet deleted successfully")
}
