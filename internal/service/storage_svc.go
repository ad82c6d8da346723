package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ==================== StorageService 图片存储 ====================

// 商品图 / 用户及客户头像统一走 S3，
// 实体字段里只存上传后拿到的公开 URL

// StorageConfig 存储配置
type StorageConfig struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	CDNDomain string // CDN 域名（可选）
	BasePath  string // 基础路径前缀
}

type StorageService struct {
	client    *s3.Client
	bucket    string
	region    string
	cdnDomain string
	basePath  string
}

// NewStorageService 创建存储服务
func NewStorageService(cfg *StorageConfig) (*StorageService, error) {
	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %v", err)
	}

	return &StorageService{
		client:    s3.NewFromConfig(awsCfg),
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		cdnDomain: cfg.CDNDomain,
		basePath:  cfg.BasePath,
	}, nil
}

// UploadImage 上传图片，返回公开访问 URL
// 只收图片类型，其余拒绝
func (s *StorageService) UploadImage(ctx context.Context, data []byte, filename string) (string, error) {
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrUnsupportedImageType
	}

	key := s.generateKey(filename)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload to s3: %v", err)
	}

	return s.publicURL(key), nil
}

// DeleteImage 按 URL 删除
func (s *StorageService) DeleteImage(ctx context.Context, url string) error {
	key := s.extractKey(url)
	if key == "" || key == url {
		return fmt.Errorf("cannot resolve object key from url")
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

// 对象 key: {basePath}/{yyyy/mm/dd}/{uuid}{ext}
func (s *StorageService) generateKey(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".jpg"
	}
	name := fmt.Sprintf("%s%s", uuid.New().String(), ext)

	datePath := time.Now().Format("2006/01/02")
	if s.basePath != "" {
		return fmt.Sprintf("%s/%s/%s", s.basePath, datePath, name)
	}
	return fmt.Sprintf("%s/%s", datePath, name)
}

func (s *StorageService) publicURL(key string) string {
	if s.cdnDomain != "" {
		return fmt.Sprintf("https://%s/%s", s.cdnDomain, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func (s *StorageService) extractKey(url string) string {
	if s.cdnDomain != "" && strings.Contains(url, s.cdnDomain) {
		return strings.TrimPrefix(url, fmt.Sprintf("https://%s/", s.cdnDomain))
	}
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.bucket, s.region)
	return strings.TrimPrefix(url, prefix)
}

// ==================== 错误定义 ====================

var ErrUnsupportedImageType = fmt.Errorf("unsupported image content type")
