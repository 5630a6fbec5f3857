package oss

import (
	"context"
	"strings"

	"VidTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

// InitMinio builds the media store from config and makes sure both buckets exist.
func InitMinio(ctx context.Context) (*Storage, error) {
	cfg := config.ConfigInfo.Minio
	hlog.Infof("Initializing MinIO client with endpoint: %s, accessKey: %s", cfg.Endpoint, cfg.AccessKey)

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create minio client")
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http://"
		if cfg.UseSSL {
			scheme = "https://"
		}
		publicURL = scheme + cfg.Endpoint
	}
	s := &Storage{client: client, publicURL: strings.TrimRight(publicURL, "/"), region: cfg.Region}
	for _, bucket := range []string{videoBucket, pictureBucket} {
		if err := s.ensureBucket(ctx, bucket); err != nil {
			return nil, err
		}
	}

	hlog.Info("Connect Minio Success")
	return s, nil
}
