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
	"VidTube.com/pkg/paginate"
	"github.com/sirupsen/logrus"
)

type TweetStore interface {
	CreateTweet(ctx context.Context, tweet *model.Tweet) error
	FindTweet(ctx context.Context, id int64) (*model.Tweet, error)
	FindTweetWithOwner(ctx context.Context, id int64) (*model.Tweet, error)
	UpdateTweet(ctx context.Context, id int64, content string) error
	DeleteTweet(ctx context.Context, id int64) error
	UserExists(ctx context.Context, userID int64) error
	ListUserTweets(ctx context.Context, ownerID int64, p paginate.Params) (*paginate.Page[*model.Tweet], error)
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

type TweetService struct {
	tweets  TweetStore
	limiter RateLimiter
}

// NewTweetService wires the tweet rules. limiter may be nil.
func NewTweetService(tweets TweetStore, limiter RateLimiter) *TweetService {
	return &TweetService{tweets: tweets, limiter: limiter}
}

func (s *TweetService) CreateTweet(ctx context.Context, actor int64, content string) (*model.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errno.RequestErr.WithMessage("Tweet content is required")
	}
	if err := s.allow(ctx, actor); err != nil {
		return nil, err
	}
	tweet := &model.Tweet{Content: content, OwnerID: actor}
	if err := s.tweets.CreateTweet(ctx, tweet); err != nil {
		return nil, err
	}
	created, err := s.tweets.FindTweetWithOwner(ctx, tweet.ID)
	if err != nil {
		if errno.IsNotFound(err) {
			return nil, errno.ServiceErr.WithMessage("Failed to create tweet")
		}
		return nil, err
	}
	return created, nil
}

func (s *TweetService) ListUserTweets(ctx context.Context, userID int64, p paginate.Params) (*paginate.Page[*model.Tweet], error) {
	if err := s.tweets.UserExists(ctx, userID); err != nil {
		return nil, err
	}
	return s.tweets.ListUserTweets(ctx, userID, p)
}

func (s *TweetService) UpdateTweet(ctx context.Context, actor, id int64, content string) (*model.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errno.RequestErr.WithMessage("Content cannot be empty")
	}
	_, err := guard.Apply(ctx, actor, "update", s.loader(id), func(ctx context.Context, t *model.Tweet) error {
		return s.tweets.UpdateTweet(ctx, t.ID, content)
	})
	if err != nil {
		return nil, err
	}
	return s.tweets.FindTweetWithOwner(ctx, id)
}

func (s *TweetService) DeleteTweet(ctx context.Context, actor, id int64) error {
	_, err := guard.Apply(ctx, actor, "delete", s.loader(id), func(ctx context.Context, t *model.Tweet) error {
		return s.tweets.DeleteTweet(ctx, t.ID)
	})
	return err
}

func (s *TweetService) loader(id int64) func(context.Context) (*model.Tweet, error) {
	return func(ctx context.Context) (*model.Tweet, error) {
		return s.tweets.FindTweet(ctx, id)
	}
}

func (s *TweetService) allow(ctx context.Context, actor int64) error {
	if s.limiter == nil {
		return nil
	}
	key := "tweet:" + strconv.FormatInt(actor, 10)
	ok, err := s.limiter.Allow(ctx, key, constants.TweetRateLimit, constants.RateLimitWindow)
	if err != nil {
		logrus.WithError(err).Warnf("rate limiter unavailable for %s", key)
		return nil
	}
	if !ok {
		return errno.TooManyRequestsErr.WithMessage("Too many requests, please slow down")
	}
	return nil
}
