package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

const maxProfileImageSize = 5 * 1024 * 1024

// ImageStore persists uploaded images and returns their public location.
type ImageStore interface {
	UploadProfileImage(ctx context.Context, userID uint, file multipart.File, header *multipart.FileHeader) (*UploadResult, error)
	DeleteImage(ctx context.Context, key string) error
}

type S3Service struct {
	client     *s3.S3
	bucketName string
	region     string
}

func NewS3Service(region, bucketName, accessKey, secretKey string) *S3Service {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(accessKey, secretKey, ""),
	}))

	return &S3Service{
		client:     s3.New(sess),
		bucketName: bucketName,
		region:     region,
	}
}

type UploadResult struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// UploadProfileImage stores the image under profile-images/<user>/.
func (s *S3Service) UploadProfileImage(ctx context.Context, userID uint, file multipart.File, header *multipart.FileHeader) (*UploadResult, error) {
	contentType, err := checkImage(header)
	if err != nil {
		return nil, err
	}

	key := profileImageKey(userID, header.Filename)

	buffer := bytes.NewBuffer(nil)
	if _, err := io.Copy(buffer, file); err != nil {
		return nil, fmt.Errorf("failed to read file: %v", err)
	}

	_, err = s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucketName),
		Key:          aws.String(key),
		Body:         bytes.NewReader(buffer.Bytes()),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("max-age=86400"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %v", err)
	}

	return &UploadResult{
		Key:         key,
		URL:         fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucketName, s.region, key),
		ContentType: contentType,
		Size:        header.Size,
	}, nil
}

func (s *S3Service) DeleteImage(ctx context.Context, key string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	return err
}

func profileImageKey(userID uint, filename string) string {
	return fmt.Sprintf("profile-images/%d/%s%s", userID, uuid.NewString(), strings.ToLower(filepath.Ext(filename)))
}

// checkImage validates size and type and returns the content type to store.
func checkImage(header *multipart.FileHeader) (string, error) {
	if header.Size > maxProfileImageSize {
		return "", fmt.Errorf("%w: file size too large: %d bytes (max: %d bytes)", ErrValidation, header.Size, maxProfileImageSize)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = contentTypeFromExtension(header.Filename)
	}
	if !isImageType(contentType) {
		return "", fmt.Errorf("%w: invalid file type: %s", ErrValidation, contentType)
	}
	return contentType, nil
}

func isImageType(contentType string) bool {
	switch strings.ToLower(contentType) {
	case "image/jpeg", "image/jpg", "image/png", "image/webp":
		return true
	}
	return false
}

func contentTypeFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
