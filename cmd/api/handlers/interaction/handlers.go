package handlers

import (
	"context"

	"VidTube.com/cmd/interaction/service"
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/paginate"
)

type CommentService interface {
	ListComments(ctx context.Context, videoID int64, p paginate.Params) (*paginate.Page[*model.Comment], error)
	AddComment(ctx context.Context, actor, videoID int64, content string) (*model.Comment, error)
	UpdateComment(ctx context.Context, actor, id int64, content string) (*model.Comment, error)
	DeleteComment(ctx context.Context, actor, id int64) error
}

type LikeService interface {
	ToggleLike(ctx context.Context, actor int64, target model.LikeTarget) (bool, error)
	LikedVideos(ctx context.Context, actor int64, p paginate.Params) (*paginate.Page[*model.Video], error)
}

var (
	_ CommentService = (*service.CommentService)(nil)
	_ LikeService    = (*service.LikeService)(nil)
)

type CommentParam struct {
	Content string `json:"content" form:"content"`
}
