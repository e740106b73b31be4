package interviewstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "job-tracker-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Interview) (id string, err error)
	ListByApplication(applicationID string) ([]dbmodels.Interview, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Interview) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByApplication(applicationID string) (list []dbmodels.Interview, err error) {
	err = i.db.
		Model(&dbmodels.Interview{}).
		Where("application_id = ?", applicationID).
		Order("date").
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}
