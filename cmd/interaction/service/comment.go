package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/guard"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/paginate"
	"github.com/sirupsen/logrus"
)

type CommentStore interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	FindComment(ctx context.Context, id int64) (*model.Comment, error)
	FindCommentWithOwner(ctx context.Context, id int64) (*model.Comment, error)
	UpdateComment(ctx context.Context, id int64, content string) error
	DeleteComment(ctx context.Context, id int64) error
	ListVideoComments(ctx context.Context, videoID int64, p paginate.Params) (*paginate.Page[*model.Comment], error)
}

// TargetChecker reports NotFound when the referenced document is absent.
type TargetChecker interface {
	TargetExists(ctx context.Context, target model.LikeTarget) error
}

// RateLimiter counts one action against key within a fixed window.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

type CommentService struct {
	comments CommentStore
	targets  TargetChecker
	limiter  RateLimiter
	events   mq.Publisher
}

// NewCommentService wires the comment rules. limiter may be nil.
func NewCommentService(comments CommentStore, targets TargetChecker, limiter RateLimiter, events mq.Publisher) *CommentService {
	if events == nil {
		events = mq.NopPublisher{}
	}
	return &CommentService{comments: comments, targets: targets, limiter: limiter, events: events}
}

func (s *CommentService) ListComments(ctx context.Context, videoID int64, p paginate.Params) (*paginate.Page[*model.Comment], error) {
	if err := s.targets.TargetExists(ctx, model.LikeTarget{Kind: model.LikeVideo, ID: videoID}); err != nil {
		return nil, err
	}
	return s.comments.ListVideoComments(ctx, videoID, p)
}

func (s *CommentService) AddComment(ctx context.Context, actor, videoID int64, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errno.RequestErr.WithMessage("Comment content is required")
	}
	if err := s.targets.TargetExists(ctx, model.LikeTarget{Kind: model.LikeVideo, ID: videoID}); err != nil {
		return nil, err
	}
	if err := allow(ctx, s.limiter, "comment:"+strconv.FormatInt(actor, 10), constants.CommentRateLimit); err != nil {
		return nil, err
	}

	comment := &model.Comment{Content: content, VideoID: videoID, OwnerID: actor}
	if err := s.comments.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	created, err := s.comments.FindCommentWithOwner(ctx, comment.ID)
	if err != nil {
		if errno.IsNotFound(err) {
			return nil, errno.ServiceErr.WithMessage("Failed to add comment")
		}
		return nil, err
	}

	if err := s.events.Publish(ctx, mq.NewEvent(mq.CommentAdded, actor, videoID)); err != nil {
		logrus.WithError(err).Warn("publish comment event failed")
	}
	return created, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, actor, id int64, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errno.RequestErr.WithMessage("Content cannot be empty")
	}
	_, err := guard.Apply(ctx, actor, "update", s.loader(id), func(ctx context.Context, c *model.Comment) error {
		return s.comments.UpdateComment(ctx, c.ID, content)
	})
	if err != nil {
		return nil, err
	}
	return s.comments.FindCommentWithOwner(ctx, id)
}

func (s *CommentService) DeleteComment(ctx context.Context, actor, id int64) error {
	_, err := guard.Apply(ctx, actor, "delete", s.loader(id), func(ctx context.Context, c *model.Comment) error {
		return s.comments.DeleteComment(ctx, c.ID)
	})
	return err
}

func (s *CommentService) loader(id int64) func(context.Context) (*model.Comment, error) {
	return func(ctx context.Context) (*model.Comment, error) {
		return s.comments.FindComment(ctx, id)
	}
}

// allow applies the per-actor limit. Limiter outages let the request through.
func allow(ctx context.Context, limiter RateLimiter, key string, limit int) error {
	if limiter == nil {
		return nil
	}
	ok, err := limiter.Allow(ctx, key, limit, constants.RateLimitWindow)
	if err != nil {
		logrus.WithError(err).Warnf("rate limiter unavailable for %s", key)
		return nil
	}
	if !ok {
		return errno.TooManyRequestsErr.WithMessage("Too many requests, please slow down")
	}
	return nil
}
