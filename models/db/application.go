package dbmodels

import (
	"encoding/json"
	"strings"
	"time"

	"job-tracker-backend/models"
)

type Application struct {
	BaseModel
	UserID         string `gorm:"type:varchar(36);index:idx_owner"`
	OrganizationID string `gorm:"type:varchar(36);index:idx_owner"`

	RoleType string `gorm:"type:varchar(255);index"`
	Company  string `gorm:"type:varchar(255)"`
	JobTitle string `gorm:"type:varchar(255)"`
	Location string `gorm:"type:varchar(255)"`
	Source   string `gorm:"type:varchar(255)"`

	Status   models.ApplicationStatus   `gorm:"type:varchar(100);default:'Applied';index"`
	Priority models.ApplicationPriority `gorm:"type:varchar(50)"`

	SalaryMin      *int
	SalaryMax      *int
	SalaryCurrency *string `gorm:"type:varchar(10)"`

	ContactName  *string `gorm:"type:varchar(255)"`
	ContactEmail *string `gorm:"type:varchar(255)"`
	ContactPhone *string `gorm:"type:varchar(255)"`

	// Произвольные поля под тип роли и журнал переходов хранятся сериализованным JSON,
	// разбор выполняется на границе конвертации в api-модель
	RequiredFields string `gorm:"type:text;default:'{}'"`
	ActivityLog    string `gorm:"type:text"`

	Tags string // метки через запятую

	Notes       []Note       `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
	Interviews  []Interview  `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
	Attachments []Attachment `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
}

type ActivityEvent struct {
	Event models.ActivityEventType `json:"event"`
	From  string                   `json:"from"`
	To    string                   `json:"to"`
	Date  time.Time                `json:"date"`
}

func NewActivityLog(events ...ActivityEvent) (string, error) {
	if events == nil {
		events = []ActivityEvent{}
	}
	body, err := json.Marshal(events)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// AppendActivity добавляет событие в сериализованный журнал, не теряя уже записанные
func AppendActivity(activityLog string, event ActivityEvent) (string, error) {
	events := []ActivityEvent{}
	if strings.TrimSpace(activityLog) != "" {
		if err := json.Unmarshal([]byte(activityLog), &events); err != nil {
			return "", err
		}
	}
	events = append(events, event)
	body, err := json.Marshal(events)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
