package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/cockroachdb/errors"
	"github.com/vidinfra/erpdesk/internal/config"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/logger"
)

type S3Store struct {
	client *s3.Client
	config *config.S3Config
	logger *logger.Logger
}

func NewS3Store(ctx context.Context, cfg *config.Configuration, log *logger.Logger) (*S3Store, error) {
	awsCfg, err := awsConfig.LoadDefaultConfig(ctx,
		awsConfig.WithRegion(cfg.S3.Region),
	)
	if err != nil {
		return nil, ierr.WithError(err).WithHint("failed to load aws config").
			Mark(ierr.ErrSystem)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client: client,
		config: &cfg.S3,
		logger: log,
	}, nil
}

func (s *S3Store) objectKey(key string) string {
	if s.config.KeyPrefix != "" {
		return fmt.Sprintf("%s/%s", s.config.KeyPrefix, key)
	}
	return key
}

func (s *S3Store) Put(ctx context.Context, obj *Object) (string, error) {
	key := s.objectKey(obj.Key)
	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(obj.Data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", ierr.WithError(err).WithHint("failed to upload file").
			WithMessagef("bucket:%s, key:%s", s.config.Bucket, key).
			Mark(ierr.ErrSystem)
	}

	s.logger.Debugw("uploaded file content", "bucket", s.config.Bucket, "key", key, "size", len(obj.Data))
	return fmt.Sprintf("s3://%s/%s", s.config.Bucket, key), nil
}

func (s *S3Store) Get(ctx context.Context, key string) (*Object, error) {
	objectKey := s.objectKey(key)
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.Bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		var nsk *s3types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, ierr.NewErrorf("object %s not found", key).
				WithHint("File content not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).WithHint("failed to get file").
			WithMessagef("bucket:%s, key:%s", s.config.Bucket, objectKey).
			Mark(ierr.ErrSystem)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, ierr.WithError(err).WithHint("failed to read file").Mark(ierr.ErrSystem)
	}
	return &Object{Key: key, Data: data, ContentType: aws.ToString(result.ContentType)}, nil
}

func (s *S3Store) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.config.Bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		var nsk *s3types.NoSuchKey
		var nf *s3types.NotFound
		if errors.As(err, &nsk) || errors.As(err, &nf) {
			return false, nil
		}
		return false, ierr.WithError(err).WithHint("failed to check file").Mark(ierr.ErrSystem)
	}
	return true, nil
}
