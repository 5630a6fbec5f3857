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

var errCommentNotFound = errno.NotFoundErr.WithMessage("Comment not found")

type CommentDao struct {
	db *gorm.DB
}

func NewCommentDao(db *gorm.DB) *CommentDao {
	return &CommentDao{db: db}
}

func (d *CommentDao) CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := d.db.WithContext(ctx).Omit(clause.Associations).Create(comment).Error; err != nil {
		return errors.Wrap(err, "CreateComment failed")
	}
	return nil
}

func (d *CommentDao) FindComment(ctx context.Context, id int64) (*model.Comment, error) {
	var comment model.Comment
	if err := d.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, commentErr(err, "FindComment")
	}
	return &comment, nil
}

func (d *CommentDao) FindCommentWithOwner(ctx context.Context, id int64) (*model.Comment, error) {
	var comment model.Comment
	err := paginate.WithOwner("Owner")(d.db.WithContext(ctx)).Where("id = ?", id).First(&comment).Error
	if err != nil {
		return nil, commentErr(err, "FindCommentWithOwner")
	}
	return &comment, nil
}

func (d *CommentDao) UpdateComment(ctx context.Context, id int64, content string) error {
	err := d.db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).Update("content", content).Error
	if err != nil {
		return errors.Wrap(err, "UpdateComment failed")
	}
	return nil
}

// DeleteComment removes the comment and the likes pointing at it.
func (d *CommentDao) DeleteComment(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return errors.Wrap(err, "delete comment likes")
		}
		res := tx.Where("id = ?", id).Delete(&model.Comment{})
		if res.Error != nil {
			return errors.Wrap(res.Error, "delete comment")
		}
		if res.RowsAffected == 0 {
			return errCommentNotFound
		}
		return nil
	})
}

func (d *CommentDao) ListVideoComments(ctx context.Context, videoID int64, p paginate.Params) (*paginate.Page[*model.Comment], error) {
	plan := paginate.Plan{
		Model:         &model.Comment{},
		Filters:       []paginate.Scope{paginate.Eq("video_id", videoID)},
		SearchColumns: []string{"content"},
		SortColumns:   map[string]string{"createdAt": "created_at", "updatedAt": "updated_at"},
		Joins:         []paginate.Scope{paginate.WithOwner("Owner")},
	}
	return paginate.Find[*model.Comment](ctx, d.db, plan, p)
}

func commentErr(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errCommentNotFound
	}
	return errors.Wrapf(err, "%s failed", op)
}
