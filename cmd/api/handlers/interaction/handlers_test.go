package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/paginate"
	"VidTube.com/pkg/testutil"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubComments struct {
	calls   int
	content string
	err     error
}

func (s *stubComments) ListComments(_ context.Context, _ int64, p paginate.Params) (*paginate.Page[*model.Comment], error) {
	s.calls++
	return paginate.NewPage([]*model.Comment(nil), 0, p), s.err
}

func (s *stubComments) AddComment(_ context.Context, actor, videoID int64, content string) (*model.Comment, error) {
	s.calls++
	s.content = content
	if s.err != nil {
		return nil, s.err
	}
	return &model.Comment{Content: content, VideoID: videoID, OwnerID: actor}, nil
}

func (s *stubComments) UpdateComment(context.Context, int64, int64, string) (*model.Comment, error) {
	s.calls++
	return &model.Comment{}, s.err
}

func (s *stubComments) DeleteComment(context.Context, int64, int64) error {
	s.calls++
	return s.err
}

// flipLikes alternates like state per target like the real service.
type flipLikes struct {
	calls int
	state map[model.LikeTarget]bool
}

func (f *flipLikes) ToggleLike(_ context.Context, _ int64, target model.LikeTarget) (bool, error) {
	f.calls++
	if f.state == nil {
		f.state = map[model.LikeTarget]bool{}
	}
	f.state[target] = !f.state[target]
	return f.state[target], nil
}

func (f *flipLikes) LikedVideos(_ context.Context, _ int64, p paginate.Params) (*paginate.Page[*model.Video], error) {
	f.calls++
	return paginate.NewPage([]*model.Video(nil), 0, p), nil
}

func interactionEngine(actor int64, comments *stubComments, likes *flipLikes) *route.Engine {
	r := testutil.NewEngine(actor)
	ch := NewCommentHandler(comments)
	r.GET("/comments/:videoId", ch.ListComments)
	r.POST("/comments/:videoId", ch.AddComment)
	r.PATCH("/comments/c/:commentId", ch.UpdateComment)
	r.DELETE("/comments/c/:commentId", ch.DeleteComment)

	lh := NewLikeHandler(likes)
	r.POST("/likes/toggle/v/:videoId", lh.ToggleVideoLike)
	r.POST("/likes/toggle/c/:commentId", lh.ToggleCommentLike)
	r.POST("/likes/toggle/t/:tweetId", lh.ToggleTweetLike)
	r.GET("/likes/videos", lh.LikedVideos)
	return r
}

func TestInteractionMalformedIDs(t *testing.T) {
	comments, likes := &stubComments{}, &flipLikes{}
	r := interactionEngine(1, comments, likes)
	cases := []struct{ method, url string }{
		{consts.MethodGet, "/comments/bad"},
		{consts.MethodPost, "/comments/bad"},
		{consts.MethodPatch, "/comments/c/bad"},
		{consts.MethodDelete, "/comments/c/0"},
		{consts.MethodPost, "/likes/toggle/v/bad"},
		{consts.MethodPost, "/likes/toggle/c/bad"},
		{consts.MethodPost, "/likes/toggle/t/bad"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.url, func(t *testing.T) {
			code, _ := testutil.Perform(t, r, tc.method, tc.url, "")
			assert.Equal(t, consts.StatusBadRequest, code)
		})
	}
	assert.Zero(t, comments.calls)
	assert.Zero(t, likes.calls)
}

func TestAddCommentHandler(t *testing.T) {
	comments := &stubComments{}
	r := interactionEngine(5, comments, &flipLikes{})

	code, env := testutil.Perform(t, r, consts.MethodPost, "/comments/9", `{"content":"nice"}`)
	assert.Equal(t, consts.StatusCreated, code)
	assert.Equal(t, "nice", comments.content)
	var got model.Comment
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.EqualValues(t, 9, got.VideoID)
	assert.EqualValues(t, 5, got.OwnerID)
}

func TestDeleteCommentForbidden(t *testing.T) {
	comments := &stubComments{err: errno.ForbiddenErr.WithMessage("You are not authorized to delete this comment")}
	r := interactionEngine(2, comments, &flipLikes{})

	code, env := testutil.Perform(t, r, consts.MethodDelete, "/comments/c/3", "")
	assert.Equal(t, consts.StatusForbidden, code)
	assert.False(t, env.Success)
	assert.Equal(t, "You are not authorized to delete this comment", env.Message)
}

func TestEmptyCommentListing(t *testing.T) {
	r := interactionEngine(0, &stubComments{}, &flipLikes{})
	code, env := testutil.Perform(t, r, consts.MethodGet, "/comments/3", "")
	assert.Equal(t, consts.StatusOK, code)
	assert.Equal(t, "No comments found for this video", env.Message)
	assert.JSONEq(t, `{"docs":[],"totalDocs":0,"limit":10,"page":1,"totalPages":0,"hasPrevPage":false,"hasNextPage":false,"prevPage":null,"nextPage":null}`, string(env.Data))
}

func TestToggleLikeStatusAlternates(t *testing.T) {
	r := interactionEngine(1, &stubComments{}, &flipLikes{})
	want := []struct {
		code int
		body string
	}{
		{consts.StatusCreated, `{"isLiked":true}`},
		{consts.StatusOK, `{"isLiked":false}`},
		{consts.StatusCreated, `{"isLiked":true}`},
	}
	for _, w := range want {
		code, env := testutil.Perform(t, r, consts.MethodPost, "/likes/toggle/t/8", "")
		assert.Equal(t, w.code, code)
		assert.JSONEq(t, w.body, string(env.Data))
	}
}
