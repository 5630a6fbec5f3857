package handlers

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/video/service"
	"VidTube.com/pkg/paginate"
)

type VideoService interface {
	ListVideos(ctx context.Context, ownerID int64, p paginate.Params) (*paginate.Page[*model.Video], error)
	PublishVideo(ctx context.Context, actor int64, req *service.PublishRequest) (*model.Video, error)
	GetVideo(ctx context.Context, viewer, id int64) (*model.Video, error)
	UpdateVideo(ctx context.Context, actor, id int64, req *service.UpdateVideoRequest) (*model.Video, error)
	DeleteVideo(ctx context.Context, actor, id int64) error
	TogglePublish(ctx context.Context, actor, id int64) (bool, error)
}

type PlaylistService interface {
	CreatePlaylist(ctx context.Context, actor int64, name, description string) (*model.Playlist, error)
	ListUserPlaylists(ctx context.Context, ownerID int64, p paginate.Params) (*paginate.Page[*model.Playlist], error)
	GetPlaylist(ctx context.Context, id int64) (*model.Playlist, error)
	UpdatePlaylist(ctx context.Context, actor, id int64, name, description string) (*model.Playlist, error)
	DeletePlaylist(ctx context.Context, actor, id int64) error
	AddVideo(ctx context.Context, actor, videoID, playlistID int64) (*model.Playlist, bool, error)
	RemoveVideo(ctx context.Context, actor, videoID, playlistID int64) (*model.Playlist, error)
}

type DashboardService interface {
	Stats(ctx context.Context, channelID int64) (*model.ChannelStats, error)
	Videos(ctx context.Context, channelID int64, p paginate.Params) (*paginate.Page[*model.Video], error)
}

var (
	_ VideoService     = (*service.VideoService)(nil)
	_ PlaylistService  = (*service.PlaylistService)(nil)
	_ DashboardService = (*service.DashboardService)(nil)
)

type PlaylistParam struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}
