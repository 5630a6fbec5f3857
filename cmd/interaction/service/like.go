package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/guard"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/paginate"
	"github.com/sirupsen/logrus"
)

type LikeStore interface {
	TargetChecker
	IsLiked(ctx context.Context, userID int64, target model.LikeTarget) (bool, error)
	CreateLike(ctx context.Context, userID int64, target model.LikeTarget) error
	DeleteLike(ctx context.Context, userID int64, target model.LikeTarget) error
	LikedVideos(ctx context.Context, userID int64, p paginate.Params) (*paginate.Page[*model.Video], error)
}

type LikeService struct {
	likes  LikeStore
	events mq.Publisher
}

func NewLikeService(likes LikeStore, events mq.Publisher) *LikeService {
	if events == nil {
		events = mq.NopPublisher{}
	}
	return &LikeService{likes: likes, events: events}
}

// ToggleLike likes the target when the actor has not, and unlikes it
// otherwise. It returns whether the target is liked afterwards.
func (s *LikeService) ToggleLike(ctx context.Context, actor int64, target model.LikeTarget) (bool, error) {
	if err := s.likes.TargetExists(ctx, target); err != nil {
		return false, err
	}
	liked, err := guard.Toggle(ctx,
		func(ctx context.Context) (bool, error) { return s.likes.IsLiked(ctx, actor, target) },
		func(ctx context.Context) error { return s.likes.DeleteLike(ctx, actor, target) },
		func(ctx context.Context) error { return s.likes.CreateLike(ctx, actor, target) },
	)
	if err != nil {
		return false, err
	}
	if err := s.events.Publish(ctx, mq.NewEvent(mq.LikeToggled, actor, target.ID).WithState(liked)); err != nil {
		logrus.WithError(err).Warn("publish like event failed")
	}
	return liked, nil
}

func (s *LikeService) LikedVideos(ctx context.Context, actor int64, p paginate.Params) (*paginate.Page[*model.Video], error) {
	return s.likes.LikedVideos(ctx, actor, p)
}
