package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/oss"
	"VidTube.com/pkg/paginate"
	"VidTube.com/pkg/utils"
)

var owners = map[int64]*model.Owner{
	1: {ID: 1, Username: "alice", Avatar: "http://img/alice.png"},
	2: {ID: 2, Username: "bob", Avatar: "http://img/bob.png"},
}

type memVideos struct {
	mu     sync.Mutex
	videos map[int64]*model.Video
	calls  int
}

func newMemVideos(vs ...*model.Video) *memVideos {
	m := &memVideos{videos: map[int64]*model.Video{}}
	for _, v := range vs {
		m.videos[v.ID] = v
	}
	return m
}

func (m *memVideos) CreateVideo(_ context.Context, v *model.Video) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	v.ID = utils.NextID()
	cp := *v
	m.videos[v.ID] = &cp
	return nil
}

func (m *memVideos) FindVideo(_ context.Context, id int64) (*model.Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	v, ok := m.videos[id]
	if !ok {
		return nil, errno.NotFoundErr.WithMessage("Video not found")
	}
	cp := *v
	return &cp, nil
}

func (m *memVideos) FindVideoWithOwner(ctx context.Context, id int64) (*model.Video, error) {
	v, err := m.FindVideo(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Owner = owners[v.OwnerID]
	return v, nil
}

func (m *memVideos) IncrViews(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.videos[id].Views++
	return nil
}

func (m *memVideos) UpdateVideo(_ context.Context, id int64, fields map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	v := m.videos[id]
	for k, val := range fields {
		switch k {
		case "title":
			v.Title = val.(string)
		case "description":
			v.Description = val.(string)
		case "thumbnail":
			v.Thumbnail = val.(string)
		}
	}
	return nil
}

func (m *memVideos) SetPublished(_ context.Context, id int64, published bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.videos[id].IsPublished = published
	return nil
}

func (m *memVideos) DeleteVideo(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	delete(m.videos, id)
	return nil
}

func (m *memVideos) ListVideos(_ context.Context, f db.VideoFilter, p paginate.Params) (*paginate.Page[*model.Video], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	var all []*model.Video
	for _, v := range m.videos {
		if f.PublishedOnly && !v.IsPublished {
			continue
		}
		if f.OwnerID != 0 && v.OwnerID != f.OwnerID {
			continue
		}
		all = append(all, v)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	total := int64(len(all))
	start := p.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + p.Limit
	if end > len(all) {
		end = len(all)
	}
	return paginate.NewPage(all[start:end], total, p), nil
}

type memMedia struct {
	failVideo, failImage bool
	uploaded             []string
	removed              []string
}

func (m *memMedia) UploadVideo(_ context.Context, path string) (*oss.Object, error) {
	if m.failVideo {
		return nil, errors.New("video upload failed")
	}
	url := "http://media/video/" + path
	m.uploaded = append(m.uploaded, url)
	return &oss.Object{URL: url, Duration: 12.5}, nil
}

func (m *memMedia) UploadImage(_ context.Context, path string) (*oss.Object, error) {
	if m.failImage {
		return nil, errors.New("image upload failed")
	}
	url := "http://media/picture/" + path
	m.uploaded = append(m.uploaded, url)
	return &oss.Object{URL: url}, nil
}

func (m *memMedia) Remove(_ context.Context, url string) error {
	m.removed = append(m.removed, url)
	return nil
}

type recordingPublisher struct {
	events []*mq.Event
}

func (r *recordingPublisher) Publish(_ context.Context, e *mq.Event) error {
	r.events = append(r.events, e)
	return nil
}
