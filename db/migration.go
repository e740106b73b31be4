package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "job-tracker-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Application")
	}
	if err := DB.AutoMigrate(&dbmodels.Note{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Note")
	}
	if err := DB.AutoMigrate(&dbmodels.Interview{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Interview")
	}
	if err := DB.AutoMigrate(&dbmodels.Attachment{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Attachment")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
