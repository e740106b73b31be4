package attachmentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "job-tracker-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.Attachment) (id string, err error)
	GetByID(id string) (rec *dbmodels.Attachment, err error)
	ListByApplication(applicationID string) ([]dbmodels.Attachment, error)
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{db: db}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.Attachment) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Attachment, error) {
	rec := dbmodels.Attachment{}
	err := i.db.
		Model(&dbmodels.Attachment{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByApplication(applicationID string) (list []dbmodels.Attachment, err error) {
	err = i.db.
		Model(&dbmodels.Attachment{}).
		Where("application_id = ?", applicationID).
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}
