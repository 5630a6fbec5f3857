package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/paginate"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errTweetNotFound = errno.NotFoundErr.WithMessage("Tweet not found")

type TweetDao struct {
	db *gorm.DB
}

func NewTweetDao(db *gorm.DB) *TweetDao {
	return &TweetDao{db: db}
}

func (d *TweetDao) CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	if err := d.db.WithContext(ctx).Omit(clause.Associations).Create(tweet).Error; err != nil {
		return errors.Wrap(err, "CreateTweet failed")
	}
	return nil
}

func (d *TweetDao) FindTweet(ctx context.Context, id int64) (*model.Tweet, error) {
	var tweet model.Tweet
	if err := d.db.WithContext(ctx).Where("id = ?", id).First(&tweet).Error; err != nil {
		return nil, tweetErr(err, "FindTweet")
	}
	return &tweet, nil
}

func (d *TweetDao) FindTweetWithOwner(ctx context.Context, id int64) (*model.Tweet, error) {
	var tweet model.Tweet
	err := paginate.WithOwner("Owner")(d.db.WithContext(ctx)).Where("id = ?", id).First(&tweet).Error
	if err != nil {
		return nil, tweetErr(err, "FindTweetWithOwner")
	}
	return &tweet, nil
}

func (d *TweetDao) UpdateTweet(ctx context.Context, id int64, content string) error {
	err := d.db.WithContext(ctx).Model(&model.Tweet{}).Where("id = ?", id).Update("content", content).Error
	if err != nil {
		return errors.Wrap(err, "UpdateTweet failed")
	}
	return nil
}

// DeleteTweet removes the tweet and its likes.
func (d *TweetDao) DeleteTweet(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tweet_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return errors.Wrap(err, "delete tweet likes")
		}
		res := tx.Where("id = ?", id).Delete(&model.Tweet{})
		if res.Error != nil {
			return errors.Wrap(res.Error, "delete tweet")
		}
		if res.RowsAffected == 0 {
			return errTweetNotFound
		}
		return nil
	})
}

// UserExists reports NotFound when the author id has no user.
func (d *TweetDao) UserExists(ctx context.Context, userID int64) error {
	var count int64
	if err := d.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return errors.Wrap(err, "UserExists failed")
	}
	if count == 0 {
		return errno.NotFoundErr.WithMessage("User not found")
	}
	return nil
}

func (d *TweetDao) ListUserTweets(ctx context.Context, ownerID int64, p paginate.Params) (*paginate.Page[*model.Tweet], error) {
	plan := paginate.Plan{
		Model:         &model.Tweet{},
		Filters:       []paginate.Scope{paginate.Eq("owner_id", ownerID)},
		SearchColumns: []string{"content"},
		SortColumns:   map[string]string{"createdAt": "created_at", "updatedAt": "updated_at"},
		Joins:         []paginate.Scope{paginate.WithOwner("Owner")},
	}
	return paginate.Find[*model.Tweet](ctx, d.db, plan, p)
}

func tweetErr(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errTweetNotFound
	}
	return errors.Wrapf(err, "%s failed", op)
}
