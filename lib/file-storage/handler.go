package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"job-tracker-backend/config"
	"job-tracker-backend/db"
	applicationstore "job-tracker-backend/lib/application/store"
	attachmentstore "job-tracker-backend/lib/file-storage/store"
	applicationapimodels "job-tracker-backend/models/api/application"
	dbmodels "job-tracker-backend/models/db"
)

type Provider interface {
	Upload(ctx context.Context, applicationID string, file []byte, fileName, contentType string) (applicationapimodels.AttachmentView, error)
	GetFile(ctx context.Context, attachmentID string) (body []byte, fileName string, contentType string, err error)
	List(applicationID string) ([]applicationapimodels.AttachmentView, error)
}

var Instance Provider

func NewHandler(s3client *minio.Client) {
	Instance = &impl{
		s3client:         s3client,
		store:            attachmentstore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
	}
}

type impl struct {
	s3client         *minio.Client
	store            attachmentstore.Provider
	applicationStore applicationstore.Provider
}

func (i impl) Upload(ctx context.Context, applicationID string, file []byte, fileName, contentType string) (applicationapimodels.AttachmentView, error) {
	rec, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		return applicationapimodels.AttachmentView{}, err
	}
	if rec == nil {
		return applicationapimodels.AttachmentView{}, applicationstore.ErrNotFound
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	objectKey := fmt.Sprintf("%s/%s-%s", applicationID, uuid.NewString(), fileName)
	_, err = i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectKey,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return applicationapimodels.AttachmentView{}, errors.Wrap(err, "ошибка загрузки файла в хранилище")
	}

	attachment := dbmodels.Attachment{
		ApplicationID: applicationID,
		Filename:      fileName,
		URL:           objectKey,
		ContentType:   contentType,
		UploadedAt:    time.Now(),
	}
	id, err := i.store.Save(attachment)
	if err != nil {
		return applicationapimodels.AttachmentView{}, err
	}
	attachment.ID = id
	return applicationapimodels.AttachmentView{
		ID:         attachment.ID,
		Filename:   attachment.Filename,
		URL:        attachment.URL,
		UploadedAt: attachment.UploadedAt,
	}, nil
}

func (i impl) GetFile(ctx context.Context, attachmentID string) ([]byte, string, string, error) {
	rec, err := i.store.GetByID(attachmentID)
	if err != nil {
		return nil, "", "", err
	}
	if rec == nil {
		return nil, "", "", errors.New("вложение не найдено")
	}
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, rec.URL, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", "", errors.Wrap(err, "ошибка получения файла из хранилища")
	}
	defer object.Close()
	body, err := io.ReadAll(object)
	if err != nil {
		return nil, "", "", errors.Wrap(err, "ошибка чтения файла из хранилища")
	}
	return body, rec.Filename, rec.ContentType, nil
}

func (i impl) List(applicationID string) ([]applicationapimodels.AttachmentView, error) {
	list, err := i.store.ListByApplication(applicationID)
	if err != nil {
		return nil, err
	}
	result := make([]applicationapimodels.AttachmentView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicationapimodels.AttachmentView{
			ID:         rec.ID,
			Filename:   rec.Filename,
			URL:        rec.URL,
			UploadedAt: rec.UploadedAt,
		})
	}
	return result, nil
}
