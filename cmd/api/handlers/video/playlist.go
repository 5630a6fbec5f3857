package handlers

import (
	"context"

	"VidTube.com/cmd/api/handlers/common"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type PlaylistHandler struct {
	playlists PlaylistService
}

func NewPlaylistHandler(playlists PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlists: playlists}
}

func (h *PlaylistHandler) CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	actor, err := common.ActorID(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	var param PlaylistParam
	if err := c.Bind(&param); err != nil {
		hlog.CtxInfof(ctx, "bind playlist body: %v", err)
	}
	playlist, err := h.playlists.CreatePlaylist(ctx, actor, param.Name, param.Description)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusCreated, playlist, "Playlist created successfully")
}

func (h *PlaylistHandler) ListUserPlaylists(ctx context.Context, c *app.RequestContext) {
	userID, err := common.PathID(c, "userId", "user ID")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	page, err := h.playlists.ListUserPlaylists(ctx, userID, common.Params(c))
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusOK, page, "User playlists fetched successfully")
}

func (h *PlaylistHandler) GetPlaylist(ctx context.Context, c *app.RequestContext) {
	id, err := common.PathID(c, "playlistId", "playlist ID")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	playlist, err := h.playlists.GetPlaylist(ctx, id)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusOK, playlist, "Playlist fetched successfully")
}

func (h *PlaylistHandler) UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	id, err := common.PathID(c, "playlistId", "playlist ID")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	actor, err := common.ActorID(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	var param PlaylistParam
	if err := c.Bind(&param); err != nil {
		hlog.CtxInfof(ctx, "bind playlist body: %v", err)
	}
	playlist, err := h.playlists.UpdatePlaylist(ctx, actor, id, param.Name, param.Description)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusOK, playlist, "Playlist updated successfully")
}

func (h *PlaylistHandler) DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	id, err := common.PathID(c, "playlistId", "playlist ID")
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	actor, err := common.ActorID(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	if err := h.playlists.DeletePlaylist(ctx, actor, id); err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusOK, common.Empty, "Playlist deleted successfully")
}

// AddVideo is idempotent: a video already in the playlist is reported, not
// duplicated.
func (h *PlaylistHandler) AddVideo(ctx context.Context, c *app.RequestContext) {
	videoID, playlistID, err := entryIDs(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	actor, err := common.ActorID(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	playlist, added, err := h.playlists.AddVideo(ctx, actor, videoID, playlistID)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	msg := "Video added to playlist successfully"
	if !added {
		msg = "Video already exists in the playlist"
	}
	common.SendResponse(c, consts.StatusOK, playlist, msg)
}

func (h *PlaylistHandler) RemoveVideo(ctx context.Context, c *app.RequestContext) {
	videoID, playlistID, err := entryIDs(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	actor, err := common.ActorID(c)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	playlist, err := h.playlists.RemoveVideo(ctx, actor, videoID, playlistID)
	if err != nil {
		common.SendError(ctx, c, err)
		return
	}
	common.SendResponse(c, consts.StatusOK, playlist, "Video removed from playlist successfully")
}

func entryIDs(c *app.RequestContext) (videoID, playlistID int64, err error) {
	if videoID, err = common.PathID(c, "videoId", "playlist or video ID"); err != nil {
		return 0, 0, err
	}
	if playlistID, err = common.PathID(c, "playlistId", "playlist or video ID"); err != nil {
		return 0, 0, err
	}
	return videoID, playlistID, nil
}
