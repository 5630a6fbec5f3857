package service

import (
	"context"
	"strings"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/guard"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/oss"
	"VidTube.com/pkg/paginate"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type VideoStore interface {
	CreateVideo(ctx context.Context, video *model.Video) error
	FindVideo(ctx context.Context, id int64) (*model.Video, error)
	FindVideoWithOwner(ctx context.Context, id int64) (*model.Video, error)
	IncrViews(ctx context.Context, id int64) error
	UpdateVideo(ctx context.Context, id int64, fields map[string]interface{}) error
	SetPublished(ctx context.Context, id int64, published bool) error
	DeleteVideo(ctx context.Context, id int64) error
	ListVideos(ctx context.Context, filter db.VideoFilter, p paginate.Params) (*paginate.Page[*model.Video], error)
}

// MediaStore uploads local files and deletes them by the URL it handed out.
type MediaStore interface {
	UploadVideo(ctx context.Context, path string) (*oss.Object, error)
	UploadImage(ctx context.Context, path string) (*oss.Object, error)
	Remove(ctx context.Context, url string) error
}

type VideoService struct {
	videos VideoStore
	media  MediaStore
	events mq.Publisher
}

func NewVideoService(videos VideoStore, media MediaStore, events mq.Publisher) *VideoService {
	if events == nil {
		events = mq.NopPublisher{}
	}
	return &VideoService{videos: videos, media: media, events: events}
}

type PublishRequest struct {
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
}

type UpdateVideoRequest struct {
	Title         string
	Description   string
	ThumbnailPath string
}

// ListVideos pages through published videos, optionally of one owner.
func (s *VideoService) ListVideos(ctx context.Context, ownerID int64, p paginate.Params) (*paginate.Page[*model.Video], error) {
	return s.videos.ListVideos(ctx, db.VideoFilter{OwnerID: ownerID, PublishedOnly: true}, p)
}

// PublishVideo uploads both files and only then creates the video. Objects
// already uploaded are removed when a later step fails.
func (s *VideoService) PublishVideo(ctx context.Context, actor int64, req *PublishRequest) (*model.Video, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" || description == "" {
		return nil, errno.RequestErr.WithMessage("Title and description are required")
	}
	if req.VideoPath == "" {
		return nil, errno.RequestErr.WithMessage("Video file is required")
	}
	if req.ThumbnailPath == "" {
		return nil, errno.RequestErr.WithMessage("Thumbnail file is required")
	}

	videoObj, err := s.media.UploadVideo(ctx, req.VideoPath)
	if err != nil {
		logrus.WithError(err).Error("upload video file failed")
		return nil, errno.ServiceErr.WithMessage("Failed to upload video file")
	}
	thumbObj, err := s.media.UploadImage(ctx, req.ThumbnailPath)
	if err != nil {
		logrus.WithError(err).Error("upload thumbnail failed")
		s.removeMedia(ctx, videoObj.URL)
		return nil, errno.ServiceErr.WithMessage("Failed to upload thumbnail")
	}

	video := &model.Video{
		Title:       title,
		Description: description,
		VideoFile:   videoObj.URL,
		Thumbnail:   thumbObj.URL,
		Duration:    videoObj.Duration,
		IsPublished: true,
		OwnerID:     actor,
	}
	if err := s.videos.CreateVideo(ctx, video); err != nil {
		s.removeMedia(ctx, videoObj.URL, thumbObj.URL)
		return nil, err
	}
	created, err := s.videos.FindVideoWithOwner(ctx, video.ID)
	if err != nil {
		if errno.IsNotFound(err) {
			return nil, errno.ServiceErr.WithMessage("Failed to publish video")
		}
		return nil, err
	}

	s.publish(ctx, mq.NewEvent(mq.VideoPublished, actor, video.ID))
	return created, nil
}

// GetVideo returns a video with its owner. Unpublished videos exist only for
// their owner, who does not add views to them.
func (s *VideoService) GetVideo(ctx context.Context, viewer, id int64) (*model.Video, error) {
	video, err := s.videos.FindVideo(ctx, id)
	if err != nil {
		return nil, err
	}
	if !video.IsPublished {
		if viewer != video.OwnerID {
			return nil, errno.NotFoundErr.WithMessage("Video not found")
		}
		return s.videos.FindVideoWithOwner(ctx, id)
	}
	if err := s.videos.IncrViews(ctx, id); err != nil {
		return nil, err
	}
	return s.videos.FindVideoWithOwner(ctx, id)
}

func (s *VideoService) UpdateVideo(ctx context.Context, actor, id int64, req *UpdateVideoRequest) (*model.Video, error) {
	fields := map[string]interface{}{}
	if title := strings.TrimSpace(req.Title); title != "" {
		fields["title"] = title
	}
	if description := strings.TrimSpace(req.Description); description != "" {
		fields["description"] = description
	}
	if len(fields) == 0 && req.ThumbnailPath == "" {
		return nil, errno.RequestErr.WithMessage("Provide a title, description or thumbnail to update")
	}

	var oldThumbnail string
	_, err := guard.Apply(ctx, actor, "update", s.loader(id), func(ctx context.Context, video *model.Video) error {
		if req.ThumbnailPath != "" {
			obj, err := s.media.UploadImage(ctx, req.ThumbnailPath)
			if err != nil {
				logrus.WithError(err).Error("upload new thumbnail failed")
				return errno.ServiceErr.WithMessage("Failed to upload new thumbnail")
			}
			fields["thumbnail"] = obj.URL
			oldThumbnail = video.Thumbnail
		}
		if err := s.videos.UpdateVideo(ctx, id, fields); err != nil {
			if url, ok := fields["thumbnail"].(string); ok {
				s.removeMedia(ctx, url)
			}
			oldThumbnail = ""
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if oldThumbnail != "" {
		s.removeMedia(ctx, oldThumbnail)
	}
	return s.videos.FindVideoWithOwner(ctx, id)
}

// DeleteVideo removes the video and everything hanging off it, then its media.
func (s *VideoService) DeleteVideo(ctx context.Context, actor, id int64) error {
	video, err := guard.Apply(ctx, actor, "delete", s.loader(id), func(ctx context.Context, video *model.Video) error {
		return s.videos.DeleteVideo(ctx, video.ID)
	})
	if err != nil {
		return err
	}
	s.removeMedia(ctx, video.VideoFile, video.Thumbnail)
	s.publish(ctx, mq.NewEvent(mq.VideoDeleted, actor, id))
	return nil
}

// TogglePublish flips the publish flag and returns the new value.
func (s *VideoService) TogglePublish(ctx context.Context, actor, id int64) (bool, error) {
	var published bool
	_, err := guard.Apply(ctx, actor, "change the publish status of", s.loader(id), func(ctx context.Context, video *model.Video) error {
		published = !video.IsPublished
		return s.videos.SetPublished(ctx, video.ID, published)
	})
	return published, err
}

func (s *VideoService) loader(id int64) func(context.Context) (*model.Video, error) {
	return func(ctx context.Context) (*model.Video, error) {
		return s.videos.FindVideo(ctx, id)
	}
}

func (s *VideoService) removeMedia(ctx context.Context, urls ...string) {
	for _, url := range urls {
		if url == "" {
			continue
		}
		if err := s.media.Remove(ctx, url); err != nil {
			logrus.WithError(err).Warnf("remove media %s failed", url)
		}
	}
}

func (s *VideoService) publish(ctx context.Context, event *mq.Event) {
	if err := s.events.Publish(ctx, event); err != nil {
		logrus.WithError(errors.WithMessage(err, event.Type)).Warn("publish event failed")
	}
}
