package oss

import (
	"context"
	"mime"
	"path/filepath"
	"strings"

	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

const (
	videoBucket   = constants.VideoBucket
	pictureBucket = constants.PictureBucket
)

// Object is an uploaded media file.
type Object struct {
	URL      string
	Duration float64
}

// Storage keeps videos and thumbnails in MinIO and hands out public URLs.
type Storage struct {
	client    *minio.Client
	publicURL string
	region    string
}

func (s *Storage) ensureBucket(ctx context.Context, bucket string) error {
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return errors.Wrapf(err, "check bucket %s", bucket)
	}
	if exists {
		return nil
	}
	if err = s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		return errors.Wrapf(err, "create bucket %s", bucket)
	}
	return nil
}

// UploadVideo probes the local file for its duration, then stores it.
func (s *Storage) UploadVideo(ctx context.Context, path string) (*Object, error) {
	duration, err := utils.ProbeDuration(path)
	if err != nil {
		return nil, err
	}
	url, err := s.put(ctx, videoBucket, path, "video/mp4")
	if err != nil {
		return nil, err
	}
	return &Object{URL: url, Duration: duration}, nil
}

func (s *Storage) UploadImage(ctx context.Context, path string) (*Object, error) {
	url, err := s.put(ctx, pictureBucket, path, "image/jpeg")
	if err != nil {
		return nil, err
	}
	return &Object{URL: url}, nil
}

func (s *Storage) put(ctx context.Context, bucket, path, fallbackType string) (string, error) {
	name := objectName(path)
	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = fallbackType
	}
	if _, err := s.client.FPutObject(ctx, bucket, name, path, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "upload %s", filepath.Base(path))
	}
	return s.objectURL(bucket, name), nil
}

// Remove deletes the object behind a URL previously returned by this store.
// URLs that do not point into one of our buckets are ignored.
func (s *Storage) Remove(ctx context.Context, url string) error {
	bucket, name, ok := s.parseURL(url)
	if !ok {
		hlog.Warnf("Skip removing foreign media url %s", url)
		return nil
	}
	if err := s.client.RemoveObject(ctx, bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrapf(err, "remove %s/%s", bucket, name)
	}
	return nil
}

func objectName(path string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(path))
}

func (s *Storage) objectURL(bucket, name string) string {
	return s.publicURL + "/" + bucket + "/" + name
}

func (s *Storage) parseURL(url string) (bucket, name string, ok bool) {
	rest, found := strings.CutPrefix(url, s.publicURL+"/")
	if !found {
		return "", "", false
	}
	bucket, name, found = strings.Cut(rest, "/")
	if !found || name == "" || (bucket != videoBucket && bucket != pictureBucket) {
		return "", "", false
	}
	return bucket, name, true
}
