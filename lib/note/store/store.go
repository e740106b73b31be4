package notestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "job-tracker-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Note) (id string, err error)
	ListByApplication(applicationID string) ([]dbmodels.Note, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Note) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByApplication(applicationID string) (list []dbmodels.Note, err error) {
	err = i.db.
		Model(&dbmodels.Note{}).
		Where("application_id = ?", applicationID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}
