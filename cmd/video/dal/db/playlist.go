package db

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/paginate"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errPlaylistNotFound = errno.NotFoundErr.WithMessage("Playlist not found")

type PlaylistDao struct {
	db *gorm.DB
}

func NewPlaylistDao(db *gorm.DB) *PlaylistDao {
	return &PlaylistDao{db: db}
}

func (d *PlaylistDao) CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	if err := d.db.WithContext(ctx).Omit(clause.Associations).Create(playlist).Error; err != nil {
		return errors.Wrap(err, "CreatePlaylist failed")
	}
	return nil
}

func (d *PlaylistDao) FindPlaylist(ctx context.Context, id int64) (*model.Playlist, error) {
	var playlist model.Playlist
	if err := d.db.WithContext(ctx).Where("id = ?", id).First(&playlist).Error; err != nil {
		return nil, playlistErr(err, "FindPlaylist")
	}
	return &playlist, nil
}

// FindPlaylistWithVideos loads the playlist, its owner projection and its
// videos in playlist order.
func (d *PlaylistDao) FindPlaylistWithVideos(ctx context.Context, id int64) (*model.Playlist, error) {
	var playlist model.Playlist
	err := paginate.WithOwner("Owner")(d.db.WithContext(ctx)).Where("id = ?", id).First(&playlist).Error
	if err != nil {
		return nil, playlistErr(err, "FindPlaylistWithVideos")
	}
	videos, err := d.playlistVideos(ctx, id)
	if err != nil {
		return nil, err
	}
	playlist.Videos = videos
	return &playlist, nil
}

func (d *PlaylistDao) playlistVideos(ctx context.Context, id int64) ([]*model.Video, error) {
	videos := make([]*model.Video, 0)
	err := d.db.WithContext(ctx).
		Select("videos.*").
		Joins("JOIN playlist_videos ON playlist_videos.video_id = videos.id").
		Where("playlist_videos.playlist_id = ?", id).
		Order("playlist_videos.position ASC").
		Find(&videos).Error
	if err != nil {
		return nil, errors.Wrap(err, "load playlist videos")
	}
	return videos, nil
}

func (d *PlaylistDao) UpdatePlaylist(ctx context.Context, id int64, fields map[string]interface{}) error {
	if err := d.db.WithContext(ctx).Model(&model.Playlist{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return errors.Wrap(err, "UpdatePlaylist failed")
	}
	return nil
}

func (d *PlaylistDao) DeletePlaylist(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return errors.Wrap(err, "delete playlist entries")
		}
		res := tx.Where("id = ?", id).Delete(&model.Playlist{})
		if res.Error != nil {
			return errors.Wrap(res.Error, "delete playlist")
		}
		if res.RowsAffected == 0 {
			return errPlaylistNotFound
		}
		return nil
	})
}

func (d *PlaylistDao) HasVideo(ctx context.Context, playlistID, videoID int64) (bool, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "HasVideo failed")
	}
	return count > 0, nil
}

// AddVideo appends the video at the end of the playlist. A concurrent
// duplicate insert is absorbed by the composite key.
func (d *PlaylistDao) AddVideo(ctx context.Context, playlistID, videoID int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tail []int64
		err := tx.Model(&model.PlaylistVideo{}).
			Where("playlist_id = ?", playlistID).
			Pluck("COALESCE(MAX(position), 0)", &tail).Error
		if err != nil {
			return errors.Wrap(err, "read playlist tail")
		}
		var last int64
		if len(tail) > 0 {
			last = tail[0]
		}
		entry := &model.PlaylistVideo{
			PlaylistID: playlistID,
			VideoID:    videoID,
			Position:   last + 1,
			CreatedAt:  time.Now(),
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(entry).Error; err != nil {
			return errors.Wrap(err, "insert playlist entry")
		}
		// touch the playlist so updatedAt reflects the change
		if err := tx.Model(&model.Playlist{}).Where("id = ?", playlistID).Update("updated_at", time.Now()).Error; err != nil {
			return errors.Wrap(err, "touch playlist")
		}
		return nil
	})
}

func (d *PlaylistDao) RemoveVideo(ctx context.Context, playlistID, videoID int64) error {
	err := d.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistVideo{}).Error
	if err != nil {
		return errors.Wrap(err, "RemoveVideo failed")
	}
	return nil
}

func (d *PlaylistDao) ListUserPlaylists(ctx context.Context, ownerID int64, p paginate.Params) (*paginate.Page[*model.Playlist], error) {
	plan := paginate.Plan{
		Model:         &model.Playlist{},
		Filters:       []paginate.Scope{paginate.Eq("owner_id", ownerID)},
		SearchColumns: []string{"name", "description"},
		SortColumns:   map[string]string{"createdAt": "created_at", "updatedAt": "updated_at", "name": "name"},
		Joins:         []paginate.Scope{paginate.WithOwner("Owner")},
	}
	return paginate.Find[*model.Playlist](ctx, d.db, plan, p)
}

func playlistErr(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errPlaylistNotFound
	}
	return errors.Wrapf(err, "%s failed", op)
}
