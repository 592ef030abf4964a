package storage

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

func (m *minioStorage) UploadFile(ctx context.Context, bucketName, objectName string, file io.Reader, size int64, contentType string) (string, error) {
	_, err := m.MinioClient.PutObject(ctx, bucketName, objectName, file, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return objectName, nil
}

func (m *minioStorage) ListObjects(ctx context.Context, bucketName, prefix string) ([]models.Attachment, error) {
	objects := m.MinioClient.ListObjects(ctx, bucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	attachments := make([]models.Attachment, 0)
	for object := range objects {
		if object.Err != nil {
			return nil, exceptions.ErrMinioListObjects(object.Err, bucketName)
		}
		attachments = append(attachments, models.Attachment{
			ObjectName:   object.Key,
			FileName:     utils.OriginalFileName(object.Key),
			Size:         object.Size,
			ContentType:  object.ContentType,
			LastModified: object.LastModified,
		})
	}
	return attachments, nil
}

func (m *minioStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, bucketName, objectName, expiryTime, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioFindObjectPresignedURL(err, bucketName)
	}
	return presignedURL.String(), nil
}
