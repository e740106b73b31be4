package dbmodels

import "time"

type Attachment struct {
	BaseModel
	ApplicationID string `gorm:"type:varchar(36);index"`
	Filename      string `gorm:"type:varchar(255)"`
	URL           string // ключ объекта в хранилище
	ContentType   string `gorm:"type:varchar(255)"`
	UploadedAt    time.Time
}
