package handlers

import (
	"context"

	"VidTube.com/cmd/api/handlers/common"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type CommentHandler struct {
	comments CommentService
}

func NewCommentHandler(comments CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

func (h *CommentHandler) ListComments(ctx context.Context, c *app.RequestContext) {
	videoID, err := common.PathID(c, "videoId", "Video ID")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	page, err := h.comments.ListComments(ctx, videoID, common.Params(c))
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	msg := "Comments fetched successfully"
	if page.TotalDocs == 0 {
		msg = "No comments found for this video"
	}
	common.SendResponse(c, consts.StatusOK, page, msg)
}

func (h *CommentHandler) AddComment(ctx context.Context, c *app.RequestContext) {
	videoID, err := common.PathID(c, "videoId", "Video ID")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	actor, err := common.ActorID(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	var param CommentParam
	if err := c.Bind(&param); err != nil {
		hlog.CtxInfof(ctx, "bind comment body: %v", err)
	}
	comment, err := h.comments.AddComment(ctx, actor, videoID, param.Content)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusCreated, comment, "Comment added successfully")
}

func (h *CommentHandler) UpdateComment(ctx context.Context, c *app.RequestContext) {
	id, err := common.PathID(c, "commentId", "Comment ID")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	actor, err := common.ActorID(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	var param CommentParam
	if err := c.Bind(&param); err != nil {
		hlog.CtxInfof(ctx, "bind comment body: %v", err)
	}
	comment, err := h.comments.UpdateComment(ctx, actor, id, param.Content)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusOK, comment, "Comment updated successfully")
}

func (h *CommentHandler) DeleteComment(ctx context.Context, c *app.RequestContext) {
	id, err := common.PathID(c, "commentId", "Comment ID")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	actor, err := common.ActorID(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	if err := h.comments.DeleteComment(ctx, actor, id); err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusOK, common.Empty, "Comment deleted successfully")
}
