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

type LikeDao struct {
	db *gorm.DB
}

func NewLikeDao(db *gorm.DB) *LikeDao {
	return &LikeDao{db: db}
}

// TargetExists reports whether the liked document is present.
func (d *LikeDao) TargetExists(ctx context.Context, target model.LikeTarget) error {
	var (
		m   interface{}
		msg string
	)
	switch target.Kind {
	case model.LikeComment:
		m, msg = &model.Comment{}, "Comment not found"
	case model.LikeTweet:
		m, msg = &model.Tweet{}, "Tweet not found"
	default:
		m, msg = &model.Video{}, "Video not found"
	}
	var count int64
	if err := d.db.WithContext(ctx).Model(m).Where("id = ?", target.ID).Count(&count).Error; err != nil {
		return errors.Wrap(err, "TargetExists failed")
	}
	if count == 0 {
		return errno.NotFoundErr.WithMessage(msg)
	}
	return nil
}

func (d *LikeDao) IsLiked(ctx context.Context, userID int64, target model.LikeTarget) (bool, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&model.Like{}).
		Where("liked_by_id = ?", userID).
		Where(clause.Eq{Column: clause.Column{Name: target.Column()}, Value: target.ID}).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "IsLiked failed")
	}
	return count > 0, nil
}

func (d *LikeDao) CreateLike(ctx context.Context, userID int64, target model.LikeTarget) error {
	if err := d.db.WithContext(ctx).Create(model.NewLike(userID, target)).Error; err != nil {
		return errors.Wrap(err, "CreateLike failed")
	}
	return nil
}

func (d *LikeDao) DeleteLike(ctx context.Context, userID int64, target model.LikeTarget) error {
	err := d.db.WithContext(ctx).
		Where("liked_by_id = ?", userID).
		Where(clause.Eq{Column: clause.Column{Name: target.Column()}, Value: target.ID}).
		Delete(&model.Like{}).Error
	if err != nil {
		return errors.Wrap(err, "DeleteLike failed")
	}
	return nil
}

// LikedVideos pages through the published videos the user liked, newest
// video first, each with its owner projection.
func (d *LikeDao) LikedVideos(ctx context.Context, userID int64, p paginate.Params) (*paginate.Page[*model.Video], error) {
	liked := d.db.Model(&model.Like{}).Select("video_id").
		Where("liked_by_id = ? AND video_id IS NOT NULL", userID)
	plan := paginate.Plan{
		Model: &model.Video{},
		Filters: []paginate.Scope{
			paginate.Eq("is_published", true),
			func(db *gorm.DB) *gorm.DB { return db.Where("id IN (?)", liked) },
		},
		SearchColumns: []string{"title", "description"},
		SortColumns:   map[string]string{"createdAt": "created_at", "views": "views", "duration": "duration", "title": "title"},
		Joins:         []paginate.Scope{paginate.WithOwner("Owner")},
	}
	return paginate.Find[*model.Video](ctx, d.db, plan, p)
}
