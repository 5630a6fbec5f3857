package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/paginate"
	"github.com/sirupsen/logrus"
)

type StatsStore interface {
	ChannelStats(ctx context.Context, channelID int64) (*model.ChannelStats, error)
}

// StatsCache is optional; a nil cache always reads through.
type StatsCache interface {
	Get(ctx context.Context, channelID int64) (*model.ChannelStats, bool)
	Set(ctx context.Context, channelID int64, stats *model.ChannelStats) error
}

type DashboardService struct {
	stats  StatsStore
	videos VideoStore
	cache  StatsCache
}

func NewDashboardService(stats StatsStore, videos VideoStore, cache StatsCache) *DashboardService {
	return &DashboardService{stats: stats, videos: videos, cache: cache}
}

func (s *DashboardService) Stats(ctx context.Context, channelID int64) (*model.ChannelStats, error) {
	if s.cache != nil {
		if stats, ok := s.cache.Get(ctx, channelID); ok {
			return stats, nil
		}
	}
	stats, err := s.stats.ChannelStats(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, channelID, stats); err != nil {
			logrus.WithError(err).Warn("cache channel stats failed")
		}
	}
	return stats, nil
}

// Videos lists the channel's own videos, drafts included.
func (s *DashboardService) Videos(ctx context.Context, channelID int64, p paginate.Params) (*paginate.Page[*model.Video], error) {
	return s.videos.ListVideos(ctx, db.VideoFilter{OwnerID: channelID}, p)
}
