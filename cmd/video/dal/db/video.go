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

var errVideoNotFound = errno.NotFoundErr.WithMessage("Video not found")

// VideoSortColumns are the sort keys clients may ask for on video listings.
var VideoSortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"views":     "views",
	"duration":  "duration",
	"title":     "title",
}

// VideoFilter narrows a video listing. A zero OwnerID means any owner.
type VideoFilter struct {
	OwnerID       int64
	PublishedOnly bool
}

type VideoDao struct {
	db *gorm.DB
}

func NewVideoDao(db *gorm.DB) *VideoDao {
	return &VideoDao{db: db}
}

func (d *VideoDao) CreateVideo(ctx context.Context, video *model.Video) error {
	if err := d.db.WithContext(ctx).Omit(clause.Associations).Create(video).Error; err != nil {
		return errors.Wrap(err, "CreateVideo failed")
	}
	return nil
}

func (d *VideoDao) FindVideo(ctx context.Context, id int64) (*model.Video, error) {
	var video model.Video
	if err := d.db.WithContext(ctx).Where("id = ?", id).First(&video).Error; err != nil {
		return nil, videoErr(err, "FindVideo")
	}
	return &video, nil
}

// FindVideoWithOwner loads the video with the owner projection attached.
func (d *VideoDao) FindVideoWithOwner(ctx context.Context, id int64) (*model.Video, error) {
	var video model.Video
	err := paginate.WithOwner("Owner")(d.db.WithContext(ctx)).Where("id = ?", id).First(&video).Error
	if err != nil {
		return nil, videoErr(err, "FindVideoWithOwner")
	}
	return &video, nil
}

// IncrViews bumps the counter in place without hooks or a full save.
func (d *VideoDao) IncrViews(ctx context.Context, id int64) error {
	res := d.db.WithContext(ctx).Model(&model.Video{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if res.Error != nil {
		return errors.Wrap(res.Error, "IncrViews failed")
	}
	if res.RowsAffected == 0 {
		return errVideoNotFound
	}
	return nil
}

func (d *VideoDao) UpdateVideo(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	if err := d.db.WithContext(ctx).Model(&model.Video{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return errors.Wrap(err, "UpdateVideo failed")
	}
	return nil
}

func (d *VideoDao) SetPublished(ctx context.Context, id int64, published bool) error {
	err := d.db.WithContext(ctx).Model(&model.Video{}).Where("id = ?", id).
		Update("is_published", published).Error
	if err != nil {
		return errors.Wrap(err, "SetPublished failed")
	}
	return nil
}

// DeleteVideo removes the video together with its likes, its comments and
// their likes, and its playlist entries, in one transaction.
func (d *VideoDao) DeleteVideo(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		comments := tx.Model(&model.Comment{}).Select("id").Where("video_id = ?", id)
		if err := tx.Where("comment_id IN (?)", comments).Delete(&model.Like{}).Error; err != nil {
			return errors.Wrap(err, "delete comment likes")
		}
		if err := tx.Where("video_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return errors.Wrap(err, "delete video likes")
		}
		if err := tx.Where("video_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return errors.Wrap(err, "delete comments")
		}
		if err := tx.Where("video_id = ?", id).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return errors.Wrap(err, "delete playlist entries")
		}
		res := tx.Where("id = ?", id).Delete(&model.Video{})
		if res.Error != nil {
			return errors.Wrap(res.Error, "delete video")
		}
		if res.RowsAffected == 0 {
			return errVideoNotFound
		}
		return nil
	})
}

// VideoPlan is the listing plan shared by the public and channel listings.
func VideoPlan(filter VideoFilter) paginate.Plan {
	plan := paginate.Plan{
		Model:         &model.Video{},
		SearchColumns: []string{"title", "description"},
		SortColumns:   VideoSortColumns,
		Joins:         []paginate.Scope{paginate.WithOwner("Owner")},
	}
	if filter.PublishedOnly {
		plan.Filters = append(plan.Filters, paginate.Eq("is_published", true))
	}
	if filter.OwnerID != 0 {
		plan.Filters = append(plan.Filters, paginate.Eq("owner_id", filter.OwnerID))
	}
	return plan
}

func (d *VideoDao) ListVideos(ctx context.Context, filter VideoFilter, p paginate.Params) (*paginate.Page[*model.Video], error) {
	return paginate.Find[*model.Video](ctx, d.db, VideoPlan(filter), p)
}

func videoErr(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errVideoNotFound
	}
	return errors.Wrapf(err, "%s failed", op)
}
