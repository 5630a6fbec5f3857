package handlers

import (
	"context"

	"VidTube.com/cmd/api/handlers/common"
	"VidTube.com/cmd/video/service"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	hutils "github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type VideoHandler struct {
	videos VideoService
}

func NewVideoHandler(videos VideoService) *VideoHandler {
	return &VideoHandler{videos: videos}
}

// ListVideos serves GET /videos; userId narrows the list to one channel.
func (h *VideoHandler) ListVideos(ctx context.Context, c *app.RequestContext) {
	var ownerID int64
	if raw := c.Query("userId"); raw != "" {
		id, err := utils.ParseID(raw, "userId")
		if err != nil {
			common.SendError(ctx, c, err)
			return
		}
		ownerID = id
	}
	page, err := h.videos.ListVideos(ctx, ownerID, common.Params(c))
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusOK, page, "Videos fetched successfully")
}

func (h *VideoHandler) PublishVideo(ctx context.Context, c *app.RequestContext) {
	actor, err := common.ActorID(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	var uploads common.Uploads
	defer uploads.Cleanup()

	req := &service.PublishRequest{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
	if req.VideoPath, err = uploads.Save(c, "video"); err != nil {
		common.SendError(ctx, c, err)
		return
	}
	if req.ThumbnailPath, err = uploads.Save(c, "thumbnail"); err != nil {
		common.SendError(ctx, c, err)
		return
	}
	video, err := h.videos.PublishVideo(ctx, actor, req)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusCreated, video, "Video published successfully")
}

// GetVideo is public; a token only matters for the owner's own drafts.
func (h *VideoHandler) GetVideo(ctx context.Context, c *app.RequestContext) {
	id, err := common.PathID(c, "videoId", "video ID")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	video, err := h.videos.GetVideo(ctx, common.OptionalActor(c), id)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusOK, video, "Video fetched successfully")
}

func (h *VideoHandler) UpdateVideo(ctx context.Context, c *app.RequestContext) {
	id, err := common.PathID(c, "videoId", "video ID")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	actor, err := common.ActorID(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	var uploads common.Uploads
	defer uploads.Cleanup()

	req := &service.UpdateVideoRequest{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
	if req.ThumbnailPath, err = uploads.Save(c, "thumbnail"); err != nil {
		common.SendError(ctx, c, err)
		return
	}
	video, err := h.videos.UpdateVideo(ctx, actor, id, req)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusOK, video, "Video details updated successfully")
}

func (h *VideoHandler) DeleteVideo(ctx context.Context, c *app.RequestContext) {
	id, err := common.PathID(c, "videoId", "video ID")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	actor, err := common.ActorID(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	if err := h.videos.DeleteVideo(ctx, actor, id); err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusOK, common.Empty, "Video deleted successfully")
}

func (h *VideoHandler) TogglePublish(ctx context.Context, c *app.RequestContext) {
	id, err := common.PathID(c, "videoId", "video ID")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	actor, err := common.ActorID(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	published, err := h.videos.TogglePublish(ctx, actor, id)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusOK, hutils.H{"isPublished": published}, "Publish status toggled successfully")
}
