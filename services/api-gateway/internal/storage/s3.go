package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// UploadTTL - срок жизни подписанной ссылки на загрузку.
const UploadTTL = 360 * time.Second

var ErrInvalidFileName = errors.New("invalid file name")

type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
}

type Upload struct {
	URL string `json:"presignedUrl"`
	Key string `json:"key"`
}

// MediaStorage - обложки, превью и видео уроков в S3-совместимом хранилище.
type MediaStorage struct {
	client    *s3.Client
	presign   *s3.PresignClient
	bucket    string
	publicURL string
}

func NewS3Storage(ctx context.Context, cfg S3Config) (*MediaStorage, error) {
	if cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 access key, secret key and bucket are required")
	}

	cred := credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithCredentialsProvider(cred), awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})

	publicURL := cfg.PublicURL
	if publicURL == "" && cfg.Endpoint != "" {
		publicURL = strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}

	return &MediaStorage{
		client:    client,
		presign:   s3.NewPresignClient(client),
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// ObjectKey строит ключ вида <uuid>-<имя файла>. Каталоги из имени отбрасываются,
// имя каталога ("dir/") файлом не считается.
func ObjectKey(fileName string) (string, error) {
	name := strings.ReplaceAll(strings.TrimSpace(fileName), "\\", "/")
	if name == "" || strings.HasSuffix(name, "/") {
		return "", ErrInvalidFileName
	}
	base := path.Base(name)
	if base == "." || base == ".." {
		return "", ErrInvalidFileName
	}
	return uuid.NewString() + "-" + base, nil
}

// PresignUpload подписывает PUT с типом и размером файла: загрузить другой файл по ссылке нельзя.
func (m *MediaStorage) PresignUpload(ctx context.Context, fileName, contentType string, size int64) (*Upload, error) {
	key, err := ObjectKey(fileName)
	if err != nil {
		return nil, err
	}

	req, err := m.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(m.bucket),
		Key:           aws.String(key),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	}, s3.WithPresignExpires(UploadTTL))
	if err != nil {
		return nil, fmt.Errorf("presign upload: %w", err)
	}
	return &Upload{URL: req.URL, Key: key}, nil
}

func (m *MediaStorage) Delete(ctx context.Context, key string) error {
	_, err := m.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

func (m *MediaStorage) PublicURL(key string) string {
	return m.publicURL + "/" + key
}
