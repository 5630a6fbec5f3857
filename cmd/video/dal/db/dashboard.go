package db

import (
	"context"

	"VidTube.com/cmd/model"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type DashboardDao struct {
	db *gorm.DB
}

func NewDashboardDao(db *gorm.DB) *DashboardDao {
	return &DashboardDao{db: db}
}

// ChannelStats aggregates the channel's videos, subscribers, views and
// video likes. The four reads run concurrently.
func (d *DashboardDao) ChannelStats(ctx context.Context, channelID int64) (*model.ChannelStats, error) {
	var stats model.ChannelStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := d.db.WithContext(gctx).Model(&model.Video{}).
			Where("owner_id = ?", channelID).
			Count(&stats.TotalVideos).Error
		return errors.Wrap(err, "count videos")
	})
	g.Go(func() error {
		err := d.db.WithContext(gctx).Model(&model.Subscription{}).
			Where("channel_id = ?", channelID).
			Count(&stats.TotalSubscribers).Error
		return errors.Wrap(err, "count subscribers")
	})
	g.Go(func() error {
		var sums []int64
		err := d.db.WithContext(gctx).Model(&model.Video{}).
			Where("owner_id = ?", channelID).
			Pluck("COALESCE(SUM(views), 0)", &sums).Error
		if len(sums) > 0 {
			stats.TotalViews = sums[0]
		}
		return errors.Wrap(err, "sum views")
	})
	g.Go(func() error {
		videos := d.db.WithContext(gctx).Model(&model.Video{}).Select("id").Where("owner_id = ?", channelID)
		err := d.db.WithContext(gctx).Model(&model.Like{}).
			Where("video_id IN (?)", videos).
			Count(&stats.TotalLikes).Error
		return errors.Wrap(err, "count likes")
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
