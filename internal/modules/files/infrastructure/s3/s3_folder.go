package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/saransh1220/html-drop/internal/modules/files/domain"
)

// Config holds configuration for S3/MinIO storage
type Config struct {
	BucketName string
	FolderID   string // key prefix acting as the folder
	Region     string
	Endpoint   string // custom endpoint (e.g. minio:9000), empty for AWS
	AccessKey  string
	SecretKey  string
	UseSSL     bool
}

// Folder implements domain.Folder on an S3 bucket. Objects are keyed
// <folder>/<escaped name>/<id>, so files sharing a name coexist and a
// list-by-name is a prefix listing. The object key doubles as the file ID.
type Folder struct {
	client *s3.Client
	config Config
}

// NewFolder creates a new S3-backed folder
func NewFolder(ctx context.Context, cfg Config) (*Folder, error) {
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("bucket name is required")
	}
	if cfg.FolderID == "" {
		return nil, fmt.Errorf("folder id is required")
	}

	var awsCfg aws.Config
	var err error

	if cfg.Endpoint != "" {
		// MinIO / LocalStack configuration
		awsCfg, err = config.LoadDefaultConfig(ctx,
			config.WithRegion(cfg.Region),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
		)
	} else {
		// Standard AWS S3 configuration
		awsCfg, err = config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			endpoint := cfg.Endpoint
			if !cfg.UseSSL && !hasHTTPPrefix(endpoint) {
				endpoint = "http://" + endpoint
			}
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true // Required for MinIO
		}
	})

	return &Folder{client: client, config: cfg}, nil
}

// FilesByName lists the objects under the name's prefix, in key order.
func (f *Folder) FilesByName(ctx context.Context, name string) ([]domain.File, error) {
	prefix := f.namePrefix(name)

	var files []domain.File
	paginator := s3.NewListObjectsV2Paginator(f.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(f.config.BucketName),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}
		for _, obj := range page.Contents {
			files = append(files, domain.File{
				ID:   aws.ToString(obj.Key),
				Name: name,
				Size: aws.ToInt64(obj.Size),
			})
		}
	}
	return files, nil
}

// CreateFile uploads blob as a new object with a generated ID.
func (f *Folder) CreateFile(ctx context.Context, blob domain.Blob) (domain.File, error) {
	key := f.namePrefix(blob.Name) + uuid.New().String()

	_, err := f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(f.config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(blob.Content),
		ContentType: aws.String(blob.ContentType),
	})
	if err != nil {
		return domain.File{}, fmt.Errorf("failed to upload to s3: %w", err)
	}

	return domain.File{
		ID:          key,
		Name:        blob.Name,
		ContentType: blob.ContentType,
		Size:        int64(len(blob.Content)),
	}, nil
}

// ReadFile downloads the object with the given key.
func (f *Folder) ReadFile(ctx context.Context, id string) ([]byte, error) {
	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.config.BucketName),
		Key:    aws.String(id),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer out.Body.Close()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	return content, nil
}

// namePrefix builds the key prefix holding every file with the given name.
func (f *Folder) namePrefix(name string) string {
	return fmt.Sprintf("%s/%s/", f.config.FolderID, url.PathEscape(name))
}

// hasHTTPPrefix checks if a string has http:// or https:// prefix
func hasHTTPPrefix(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
