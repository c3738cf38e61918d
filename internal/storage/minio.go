package storage

import (
	"context"
	"io"
	"log"

	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/opstrack/forms-go/internal/config"
)

var Client *minioSDK.Client
var BucketName string

func InitMinio() {
	minioClient, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	BucketName = config.MinioBucket

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, BucketName)
	if err != nil {
		log.Fatalf("Failed to check bucket existence: %v", err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, BucketName, minioSDK.MakeBucketOptions{}); err != nil {
			log.Fatalf("Failed to create bucket: %v", err)
		}
		log.Printf("Bucket created: %s", BucketName)
	}

	Client = minioClient
	log.Println("Connected to MinIO")
}

// MinioStore is the FileStore backed by the shared MinIO client.
type MinioStore struct{}

func NewMinioStore() *MinioStore {
	return &MinioStore{}
}

func (s *MinioStore) Save(ctx context.Context, objectName, contentType string, content io.Reader, size int64) (string, error) {
	_, err := Client.PutObject(ctx, BucketName, objectName, content, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return objectName, nil
}

func (s *MinioStore) Delete(ctx context.Context, path string) error {
	return Client.RemoveObject(ctx, BucketName, path, minioSDK.RemoveObjectOptions{})
}
