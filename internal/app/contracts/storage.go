package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"io"
	"time"
)

type Storage interface {
	UploadFile(ctx context.Context, bucketName, objectName string, file io.Reader, size int64, contentType string) (string, error)
	ListObjects(ctx context.Context, bucketName, prefix string) ([]models.Attachment, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error)
}
