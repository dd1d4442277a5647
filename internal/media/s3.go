package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectAPI: часть клиента S3, используемая S3Store.
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Config описывает подключение к S3-совместимому хранилищу.
type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	PublicURL string
}

// S3Store хранит изображения в бакете S3.
type S3Store struct {
	client    ObjectAPI
	bucket    string
	publicURL string
}

// NewS3Store создаёт клиента S3 со статическими ключами доступа.
// Если задан Endpoint, запросы идут на него в path-style (MinIO, Spaces).
func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	const op = "media.NewS3Store"

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return NewS3StoreWithClient(client, cfg.Bucket, cfg.PublicURL), nil
}

// NewS3StoreWithClient создаёт S3Store поверх готового клиента.
func NewS3StoreWithClient(client ObjectAPI, bucket, publicURL string) *S3Store {
	return &S3Store{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

// Save загружает объект с ключом name и возвращает его публичный адрес.
func (s *S3Store) Save(ctx context.Context, name, contentType string, data []byte) (string, error) {
	const op = "media.S3Store.Save"

	key := strings.TrimPrefix(name, "/")
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return s.publicURL + "/" + key, nil
}

// Remove удаляет объект, на который указывает публичный адрес ref.
func (s *S3Store) Remove(ctx context.Context, ref string) error {
	const op = "media.S3Store.Remove"

	key, ok := strings.CutPrefix(ref, s.publicURL+"/")
	if !ok || key == "" {
		return fmt.Errorf("%s: %w: %s", op, ErrForeignRef, ref)
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
