package initializers

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"job-tracker-backend/config"
	filestorage "job-tracker-backend/lib/file-storage"
	s3client "job-tracker-backend/s3"
)

func InitS3(ctx context.Context) {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}
	s3client.Client = minioClient

	if err = s3client.EnsureBucket(ctx); err != nil {
		log.WithError(err).Error("S3 соединение не удалось — бакет вложений недоступен")
	}

	filestorage.NewHandler(minioClient)
	log.Info("S3 клиент успешно инициализирован")
}
