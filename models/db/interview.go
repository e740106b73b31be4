package dbmodels

import "time"

type Interview struct {
	BaseModel
	ApplicationID string `gorm:"type:varchar(36);index"`
	Type          string `gorm:"type:varchar(255)"` // например "Phone Screen"
	Date          time.Time
	Mode          string `gorm:"type:varchar(100)"` // например "Zoom"
	Status        string `gorm:"type:varchar(100)"` // Scheduled/Completed
}
