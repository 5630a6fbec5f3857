package service

import (
	"context"
	"strings"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/guard"
	"VidTube.com/pkg/paginate"
)

type PlaylistStore interface {
	CreatePlaylist(ctx context.Context, playlist *model.Playlist) error
	FindPlaylist(ctx context.Context, id int64) (*model.Playlist, error)
	FindPlaylistWithVideos(ctx context.Context, id int64) (*model.Playlist, error)
	UpdatePlaylist(ctx context.Context, id int64, fields map[string]interface{}) error
	DeletePlaylist(ctx context.Context, id int64) error
	HasVideo(ctx context.Context, playlistID, videoID int64) (bool, error)
	AddVideo(ctx context.Context, playlistID, videoID int64) error
	RemoveVideo(ctx context.Context, playlistID, videoID int64) error
	ListUserPlaylists(ctx context.Context, ownerID int64, p paginate.Params) (*paginate.Page[*model.Playlist], error)
}

// VideoFinder is the slice of the video store playlists need.
type VideoFinder interface {
	FindVideo(ctx context.Context, id int64) (*model.Video, error)
}

type PlaylistService struct {
	playlists PlaylistStore
	videos    VideoFinder
}

func NewPlaylistService(playlists PlaylistStore, videos VideoFinder) *PlaylistService {
	return &PlaylistService{playlists: playlists, videos: videos}
}

func (s *PlaylistService) CreatePlaylist(ctx context.Context, actor int64, name, description string) (*model.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errno.RequestErr.WithMessage("Playlist name is required")
	}
	playlist := &model.Playlist{
		Name:        name,
		Description: strings.TrimSpace(description),
		OwnerID:     actor,
	}
	if err := s.playlists.CreatePlaylist(ctx, playlist); err != nil {
		return nil, err
	}
	created, err := s.playlists.FindPlaylistWithVideos(ctx, playlist.ID)
	if err != nil {
		if errno.IsNotFound(err) {
			return nil, errno.ServiceErr.WithMessage("Failed to create playlist")
		}
		return nil, err
	}
	return created, nil
}

func (s *PlaylistService) ListUserPlaylists(ctx context.Context, ownerID int64, p paginate.Params) (*paginate.Page[*model.Playlist], error) {
	return s.playlists.ListUserPlaylists(ctx, ownerID, p)
}

func (s *PlaylistService) GetPlaylist(ctx context.Context, id int64) (*model.Playlist, error) {
	return s.playlists.FindPlaylistWithVideos(ctx, id)
}

// UpdatePlaylist renames the playlist; a blank description keeps the old one.
func (s *PlaylistService) UpdatePlaylist(ctx context.Context, actor, id int64, name, description string) (*model.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errno.RequestErr.WithMessage("Name is required")
	}
	fields := map[string]interface{}{"name": name}
	if d := strings.TrimSpace(description); d != "" {
		fields["description"] = d
	}
	_, err := guard.Apply(ctx, actor, "update", s.loader(id), func(ctx context.Context, p *model.Playlist) error {
		return s.playlists.UpdatePlaylist(ctx, p.ID, fields)
	})
	if err != nil {
		return nil, err
	}
	return s.playlists.FindPlaylistWithVideos(ctx, id)
}

func (s *PlaylistService) DeletePlaylist(ctx context.Context, actor, id int64) error {
	_, err := guard.Apply(ctx, actor, "delete", s.loader(id), func(ctx context.Context, p *model.Playlist) error {
		return s.playlists.DeletePlaylist(ctx, p.ID)
	})
	return err
}

// AddVideo appends a video once. Adding it again leaves the playlist
// unchanged and reports added=false.
func (s *PlaylistService) AddVideo(ctx context.Context, actor, videoID, playlistID int64) (playlist *model.Playlist, added bool, err error) {
	load := func(ctx context.Context) (*model.Playlist, error) {
		p, err := s.playlists.FindPlaylist(ctx, playlistID)
		if err != nil {
			return nil, err
		}
		if _, err := s.videos.FindVideo(ctx, videoID); err != nil {
			return nil, err
		}
		return p, nil
	}
	_, err = guard.Apply(ctx, actor, "add videos to", load, func(ctx context.Context, p *model.Playlist) error {
		exists, err := s.playlists.HasVideo(ctx, p.ID, videoID)
		if err != nil || exists {
			return err
		}
		added = true
		return s.playlists.AddVideo(ctx, p.ID, videoID)
	})
	if err != nil {
		return nil, false, err
	}
	playlist, err = s.playlists.FindPlaylistWithVideos(ctx, playlistID)
	return playlist, added, err
}

func (s *PlaylistService) RemoveVideo(ctx context.Context, actor, videoID, playlistID int64) (*model.Playlist, error) {
	_, err := guard.Apply(ctx, actor, "remove videos from", s.loader(playlistID), func(ctx context.Context, p *model.Playlist) error {
		return s.playlists.RemoveVideo(ctx, p.ID, videoID)
	})
	if err != nil {
		return nil, err
	}
	return s.playlists.FindPlaylistWithVideos(ctx, playlistID)
}

func (s *PlaylistService) loader(id int64) func(context.Context) (*model.Playlist, error) {
	return func(ctx context.Context) (*model.Playlist, error) {
		return s.playlists.FindPlaylist(ctx, id)
	}
}
