package handlers

import (
	"context"

	"VidTube.com/cmd/api/handlers/common"
	"VidTube.com/cmd/model"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type LikeHandler struct {
	likes LikeService
}

func NewLikeHandler(likes LikeService) *LikeHandler {
	return &LikeHandler{likes: likes}
}

func (h *LikeHandler) ToggleVideoLike(ctx context.Context, c *app.RequestContext) {
	h.toggle(ctx, c, model.LikeVideo, "videoId", "video ID")
}

func (h *LikeHandler) ToggleCommentLike(ctx context.Context, c *app.RequestContext) {
	h.toggle(ctx, c, model.LikeComment, "commentId", "comment ID")
}

func (h *LikeHandler) ToggleTweetLike(ctx context.Context, c *app.RequestContext) {
	h.toggle(ctx, c, model.LikeTweet, "tweetId", "tweet ID")
}

// toggle answers 201 when a like was created and 200 when one was removed.
func (h *LikeHandler) toggle(ctx context.Context, c *app.RequestContext, kind model.LikeKind, param, label string) {
	id, err := common.PathID(c, param, label)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	actor, err := common.ActorID(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	liked, err := h.likes.ToggleLike(ctx, actor, model.LikeTarget{Kind: kind, ID: id})
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	if liked {
		common.SendResponse(c, consts.StatusCreated, utils.H{"isLiked": true}, "Like added successfully")
		return
	}
	common.SendResponse(c, consts.StatusOK, utils.H{"isLiked": false}, "Like removed successfully")
}

func (h *LikeHandler) LikedVideos(ctx context.Context, c *app.RequestContext) {
	actor, err := common.ActorID(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	page, err := h.likes.LikedVideos(ctx, actor, common.Params(c))
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusOK, page, "Liked videos fetched successfully")
}
