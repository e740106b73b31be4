package analyticsstore

import (
	"gorm.io/gorm"

	applicationapimodels "job-tracker-backend/models/api/application"
	dbmodels "job-tracker-backend/models/db"
)

type Provider interface {
	TotalCount(userID, orgID string) (count int64, err error)
	CountByStatus(userID, orgID string) ([]applicationapimodels.StatusCount, error)
	CountByRole(userID, orgID string) ([]applicationapimodels.RoleCount, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) TotalCount(userID, orgID string) (count int64, err error) {
	var rowCount int64
	err = i.db.
		Model(&dbmodels.Application{}).
		Where("user_id = ?", userID).
		Where("organization_id = ?", orgID).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

// CountByStatus группирует по фактическому значению колонки,
// статусы без записей в выборку не попадают
func (i impl) CountByStatus(userID, orgID string) (list []applicationapimodels.StatusCount, err error) {
	list = []applicationapimodels.StatusCount{}
	err = i.db.
		Model(&dbmodels.Application{}).
		Select("status, count(*) as count").
		Where("user_id = ?", userID).
		Where("organization_id = ?", orgID).
		Group("status").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CountByRole(userID, orgID string) (list []applicationapimodels.RoleCount, err error) {
	list = []applicationapimodels.RoleCount{}
	err = i.db.
		Model(&dbmodels.Application{}).
		Select("role_type as role, count(*) as count").
		Where("user_id = ?", userID).
		Where("organization_id = ?", orgID).
		Group("role_type").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
