package service

import (
	"context"
	"testing"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/paginate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memComments struct {
	next     int64
	comments map[int64]*model.Comment
}

func newMemComments() *memComments {
	return &memComments{next: 100, comments: map[int64]*model.Comment{}}
}

func (m *memComments) CreateComment(_ context.Context, c *model.Comment) error {
	m.next++
	c.ID = m.next
	cp := *c
	m.comments[c.ID] = &cp
	return nil
}

func (m *memComments) FindComment(_ context.Context, id int64) (*model.Comment, error) {
	c, ok := m.comments[id]
	if !ok {
		return nil, errno.NotFoundErr.WithMessage("Comment not found")
	}
	cp := *c
	return &cp, nil
}

func (m *memComments) FindCommentWithOwner(ctx context.Context, id int64) (*model.Comment, error) {
	c, err := m.FindComment(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Owner = &model.Owner{ID: c.OwnerID, Username: "user"}
	return c, nil
}

func (m *memComments) UpdateComment(_ context.Context, id int64, content string) error {
	m.comments[id].Content = content
	return nil
}

func (m *memComments) DeleteComment(_ context.Context, id int64) error {
	delete(m.comments, id)
	return nil
}

func (m *memComments) ListVideoComments(_ context.Context, videoID int64, p paginate.Params) (*paginate.Page[*model.Comment], error) {
	var docs []*model.Comment
	for _, c := range m.comments {
		if c.VideoID == videoID {
			docs = append(docs, c)
		}
	}
	return paginate.NewPage(docs, int64(len(docs)), p), nil
}

// memLikes also plays the target checker: any id in present exists.
type memLikes struct {
	present map[model.LikeTarget]bool
	likes   map[int64]map[model.LikeTarget]bool
	creates int
	deletes int
}

func newMemLikes(targets ...model.LikeTarget) *memLikes {
	m := &memLikes{present: map[model.LikeTarget]bool{}, likes: map[int64]map[model.LikeTarget]bool{}}
	for _, t := range targets {
		m.present[t] = true
	}
	return m
}

func (m *memLikes) TargetExists(_ context.Context, t model.LikeTarget) error {
	if !m.present[t] {
		return errno.NotFoundErr.WithMessage("not found")
	}
	return nil
}

func (m *memLikes) IsLiked(_ context.Context, user int64, t model.LikeTarget) (bool, error) {
	return m.likes[user][t], nil
}

func (m *memLikes) CreateLike(_ context.Context, user int64, t model.LikeTarget) error {
	m.creates++
	if m.likes[user] == nil {
		m.likes[user] = map[model.LikeTarget]bool{}
	}
	m.likes[user][t] = true
	return nil
}

func (m *memLikes) DeleteLike(_ context.Context, user int64, t model.LikeTarget) error {
	m.deletes++
	delete(m.likes[user], t)
	return nil
}

func (m *memLikes) LikedVideos(_ context.Context, user int64, p paginate.Params) (*paginate.Page[*model.Video], error) {
	var docs []*model.Video
	for t := range m.likes[user] {
		if t.Kind == model.LikeVideo {
			docs = append(docs, &model.Video{Base: model.Base{ID: t.ID}})
		}
	}
	return paginate.NewPage(docs, int64(len(docs)), p), nil
}

type fixedLimiter struct {
	limit int
	hits  map[string]int
}

func (f *fixedLimiter) Allow(_ context.Context, key string, limit int, _ time.Duration) (bool, error) {
	if f.hits == nil {
		f.hits = map[string]int{}
	}
	f.hits[key]++
	if f.limit > 0 {
		limit = f.limit
	}
	return f.hits[key] <= limit, nil
}

var video7 = model.LikeTarget{Kind: model.LikeVideo, ID: 7}

func TestCommentOwnership(t *testing.T) {
	ctx := context.Background()
	comments := newMemComments()
	svc := NewCommentService(comments, newMemLikes(video7), nil, nil)

	c, err := svc.AddComment(ctx, 1, 7, "  first!  ")
	require.NoError(t, err)
	assert.Equal(t, "first!", c.Content)
	require.NotNil(t, c.Owner)

	t.Run("other user cannot delete", func(t *testing.T) {
		err := svc.DeleteComment(ctx, 2, c.ID)
		assert.Equal(t, int64(errno.ForbiddenCode), errno.ConvertErr(err).ErrCode)
		assert.Equal(t, "You are not authorized to delete this comment", errno.ConvertErr(err).ErrMsg)
		assert.Contains(t, comments.comments, c.ID)
	})

	t.Run("other user cannot update", func(t *testing.T) {
		_, err := svc.UpdateComment(ctx, 2, c.ID, "hijack")
		assert.Equal(t, int64(errno.ForbiddenCode), errno.ConvertErr(err).ErrCode)
		assert.Equal(t, "first!", comments.comments[c.ID].Content)
	})

	t.Run("missing comment", func(t *testing.T) {
		assert.True(t, errno.IsNotFound(svc.DeleteComment(ctx, 2, 999)))
		_, err := svc.UpdateComment(ctx, 1, 999, "x")
		assert.True(t, errno.IsNotFound(err))
	})

	t.Run("blank update", func(t *testing.T) {
		_, err := svc.UpdateComment(ctx, 1, c.ID, "   ")
		assert.Equal(t, "Content cannot be empty", errno.ConvertErr(err).ErrMsg)
	})

	t.Run("owner updates and deletes", func(t *testing.T) {
		got, err := svc.UpdateComment(ctx, 1, c.ID, "edited")
		require.NoError(t, err)
		assert.Equal(t, "edited", got.Content)
		require.NoError(t, svc.DeleteComment(ctx, 1, c.ID))
		assert.NotContains(t, comments.comments, c.ID)
	})
}

func TestAddCommentValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewCommentService(newMemComments(), newMemLikes(video7), nil, nil)

	_, err := svc.AddComment(ctx, 1, 7, "")
	assert.Equal(t, "Comment content is required", errno.ConvertErr(err).ErrMsg)
	_, err = svc.AddComment(ctx, 1, 8, "hello")
	assert.True(t, errno.IsNotFound(err))
	_, err = svc.ListComments(ctx, 8, paginate.NewParams("", "", "", "", ""))
	assert.True(t, errno.IsNotFound(err))
}

func TestAddCommentRateLimited(t *testing.T) {
	ctx := context.Background()
	comments := newMemComments()
	svc := NewCommentService(comments, newMemLikes(video7), &fixedLimiter{limit: 2}, nil)

	for i := 0; i < 2; i++ {
		_, err := svc.AddComment(ctx, 1, 7, "hi")
		require.NoError(t, err)
	}
	_, err := svc.AddComment(ctx, 1, 7, "hi")
	assert.Equal(t, int64(errno.TooManyRequestsCode), errno.ConvertErr(err).ErrCode)
	assert.Len(t, comments.comments, 2)

	_, err = svc.AddComment(ctx, 2, 7, "hi")
	assert.NoError(t, err)
}

func TestEmptyCommentPage(t *testing.T) {
	svc := NewCommentService(newMemComments(), newMemLikes(video7), nil, nil)
	page, err := svc.ListComments(context.Background(), 7, paginate.NewParams("", "", "", "", ""))
	require.NoError(t, err)
	assert.Empty(t, page.Docs)
	assert.EqualValues(t, 0, page.TotalDocs)
}

func TestToggleLikeAlternates(t *testing.T) {
	ctx := context.Background()
	targets := []model.LikeTarget{
		video7,
		{Kind: model.LikeComment, ID: 8},
		{Kind: model.LikeTweet, ID: 9},
	}
	for _, target := range targets {
		t.Run(string(target.Kind), func(t *testing.T) {
			likes := newMemLikes(targets...)
			svc := NewLikeService(likes, nil)

			for i, want := range []bool{true, false, true, false} {
				liked, err := svc.ToggleLike(ctx, 1, target)
				require.NoError(t, err)
				assert.Equal(t, want, liked, "call %d", i)
			}
			assert.Equal(t, 2, likes.creates)
			assert.Equal(t, 2, likes.deletes)
			assert.False(t, likes.likes[1][target])
		})
	}
}

func TestToggleLikeMissingTarget(t *testing.T) {
	likes := newMemLikes()
	_, err := NewLikeService(likes, nil).ToggleLike(context.Background(), 1, video7)
	assert.True(t, errno.IsNotFound(err))
	assert.Zero(t, likes.creates+likes.deletes)
}

func TestLikedVideos(t *testing.T) {
	ctx := context.Background()
	likes := newMemLikes(video7)
	svc := NewLikeService(likes, nil)
	_, err := svc.ToggleLike(ctx, 1, video7)
	require.NoError(t, err)

	page, err := svc.LikedVideos(ctx, 1, paginate.NewParams("", "", "", "", ""))
	require.NoError(t, err)
	require.Len(t, page.Docs, 1)
	assert.EqualValues(t, 7, page.Docs[0].ID)

	page, err = svc.LikedVideos(ctx, 2, paginate.NewParams("", "", "", "", ""))
	require.NoError(t, err)
	assert.Empty(t, page.Docs)
}

type brokenLimiter struct{}

func (brokenLimiter) Allow(context.Context, string, int, time.Duration) (bool, error) {
	return false, errno.ServiceErr
}

func TestLimiterOutageLetsCommentsThrough(t *testing.T) {
	svc := NewCommentService(newMemComments(), newMemLikes(video7), brokenLimiter{}, nil)
	_, err := svc.AddComment(context.Background(), 1, 7, "still here")
	assert.NoError(t, err)
}
