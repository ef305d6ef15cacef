package storage

import (
	"context"
	"io"
	"medicenter-service/internal/app/contracts"
	"medicenter-service/internal/pkg/exceptions"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	minioClient *minio.Client
	bucketName  string
}

func NewMinioStorage(minioClient *minio.Client, bucketName string) contracts.MediaStorage {
	return &minioStorage{
		minioClient: minioClient,
		bucketName:  bucketName,
	}
}

func (m *minioStorage) PutObject(ctx context.Context, objectName, contentType string, body io.Reader, size int64) error {
	_, err := m.minioClient.PutObject(ctx, m.bucketName, objectName, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, m.bucketName)
	}
	return nil
}

func (m *minioStorage) GetObject(ctx context.Context, objectName string) (io.ReadCloser, string, error) {
	object, err := m.minioClient.GetObject(ctx, m.bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", exceptions.ErrMinioGetObject(err, objectName)
	}

	stat, err := object.Stat()
	if err != nil {
		object.Close()
		return nil, "", exceptions.ErrMinioGetObject(err, objectName)
	}

	return object, stat.ContentType, nil
}

func (m *minioStorage) GetObjectUrlWithExpiryTime(ctx context.Context, objectName string, expiryTime time.Duration) (string, error) {
	presignedURL, err := m.minioClient.PresignedGetObject(ctx, m.bucketName, objectName, expiryTime, nil)
	if err != nil {
		return "", exceptions.ErrMinioGetObject(err, objectName)
	}
	return presignedURL.String(), nil
}
