package applicationapimodels

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"job-tracker-backend/models"
	dbmodels "job-tracker-backend/models/db"
)

type ApplicationView struct {
	ID             string                     `json:"id"`
	UserID         string                     `json:"userId"`
	OrganizationID string                     `json:"organizationId"`
	RoleType       string                     `json:"roleType"`
	Company        string                     `json:"company"`
	JobTitle       string                     `json:"jobTitle"`
	Location       string                     `json:"location"`
	Source         string                     `json:"source"`
	Status         models.ApplicationStatus   `json:"status"`
	Priority       models.ApplicationPriority `json:"priority"`
	SalaryMin      *int                       `json:"salaryMin"`
	SalaryMax      *int                       `json:"salaryMax"`
	SalaryCurrency *string                    `json:"salaryCurrency"`
	ContactName    *string                    `json:"contactName"`
	ContactEmail   *string                    `json:"contactEmail"`
	ContactPhone   *string                    `json:"contactPhone"`
	RequiredFields map[string]interface{}     `json:"requiredFields"`
	ActivityLog    []dbmodels.ActivityEvent   `json:"activityLog"`
	Tags           string                     `json:"tags"`
	Notes          []NoteView                 `json:"notes"`
	Interviews     []InterviewView            `json:"interviews"`
	Attachments    []AttachmentView           `json:"attachments"`
	CreatedAt      time.Time                  `json:"createdAt"`
	UpdatedAt      time.Time                  `json:"updatedAt"`
}

type NoteView struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
}

type InterviewView struct {
	ID     string    `json:"id"`
	Type   string    `json:"type"`
	Date   time.Time `json:"date"`
	Mode   string    `json:"mode"`
	Status string    `json:"status"`
}

type AttachmentView struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type CreateApplicationRequest struct {
	RoleType       string                     `json:"roleType"`
	Company        string                     `json:"company"`
	JobTitle       string                     `json:"jobTitle"`
	Location       string                     `json:"location"`
	Source         string                     `json:"source"`
	Status         models.ApplicationStatus   `json:"status"`
	Priority       models.ApplicationPriority `json:"priority"`
	SalaryMin      *int                       `json:"salaryMin"`
	SalaryMax      *int                       `json:"salaryMax"`
	SalaryCurrency *string                    `json:"salaryCurrency"`
	ContactName    *string                    `json:"contactName"`
	ContactEmail   *string                    `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone   *string                    `json:"contactPhone"`
	RequiredFields map[string]interface{}     `json:"requiredFields"`
	Tags           interface{}                `json:"tags"` // список меток либо готовая строка
}

var validate = validator.New()

func (r CreateApplicationRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return errors.New("некорректный формат контактного email")
	}
	if r.SalaryMin != nil && r.SalaryMax != nil && *r.SalaryMin > *r.SalaryMax {
		return errors.New("нижняя граница зарплаты больше верхней")
	}
	return nil
}

// FlatTags приводит метки к строке с разделителем-запятой.
// Список склеивается, скалярное значение сохраняется как есть.
func (r CreateApplicationRequest) FlatTags() string {
	switch v := r.Tags.(type) {
	case nil:
		return ""
	case string:
		return v
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}

type UpdateApplicationRequest struct {
	Status         *models.ApplicationStatus   `json:"status"`
	Priority       *models.ApplicationPriority `json:"priority"`
	RequiredFields map[string]interface{}      `json:"requiredFields"`
}

type CreateNoteRequest struct {
	Text     string `json:"text"`
	AuthorID string `json:"authorId"`
}

func (r CreateNoteRequest) Validate() error {
	if r.Text == "" {
		return errors.New("не указан текст заметки")
	}
	return nil
}

type CreateInterviewRequest struct {
	Type   string    `json:"type"`
	Date   time.Time `json:"date"`
	Mode   string    `json:"mode"`
	Status string    `json:"status"`
}

type AnalyticsView struct {
	TotalApps int64         `json:"totalApps"`
	ByStatus  []StatusCount `json:"byStatus"`
	ByRole    []RoleCount   `json:"byRole"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type RoleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

// Convert разбирает сериализованные JSON-поля записи.
// Нечитаемое значение считается нарушением целостности данных: поле заменяется
// пустым значением с предупреждением в логе, остальная запись отдается как есть.
func Convert(rec dbmodels.Application) ApplicationView {
	view := ApplicationView{
		ID:             rec.ID,
		UserID:         rec.UserID,
		OrganizationID: rec.OrganizationID,
		RoleType:       rec.RoleType,
		Company:        rec.Company,
		JobTitle:       rec.JobTitle,
		Location:       rec.Location,
		Source:         rec.Source,
		Status:         rec.Status,
		Priority:       rec.Priority,
		SalaryMin:      rec.SalaryMin,
		SalaryMax:      rec.SalaryMax,
		SalaryCurrency: rec.SalaryCurrency,
		ContactName:    rec.ContactName,
		ContactEmail:   rec.ContactEmail,
		ContactPhone:   rec.ContactPhone,
		RequiredFields: decodeRequiredFields(rec.ID, rec.RequiredFields),
		ActivityLog:    decodeActivityLog(rec.ID, rec.ActivityLog),
		Tags:           rec.Tags,
		Notes:          make([]NoteView, 0, len(rec.Notes)),
		Interviews:     make([]InterviewView, 0, len(rec.Interviews)),
		Attachments:    make([]AttachmentView, 0, len(rec.Attachments)),
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
	for _, note := range rec.Notes {
		view.Notes = append(view.Notes, NoteView{
			ID:        note.ID,
			Text:      note.Text,
			AuthorID:  note.AuthorID,
			CreatedAt: note.CreatedAt,
		})
	}
	for _, interview := range rec.Interviews {
		view.Interviews = append(view.Interviews, InterviewView{
			ID:     interview.ID,
			Type:   interview.Type,
			Date:   interview.Date,
			Mode:   interview.Mode,
			Status: interview.Status,
		})
	}
	for _, attachment := range rec.Attachments {
		view.Attachments = append(view.Attachments, AttachmentView{
			ID:         attachment.ID,
			Filename:   attachment.Filename,
			URL:        attachment.URL,
			UploadedAt: attachment.UploadedAt,
		})
	}
	return view
}

func decodeRequiredFields(recID, raw string) map[string]interface{} {
	fields := map[string]interface{}{}
	if strings.TrimSpace(raw) == "" {
		return fields
	}
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		log.WithError(err).
			WithField("application_id", recID).
			Warn("нарушение целостности данных: нечитаемый required_fields, поле заменено пустым объектом")
		return map[string]interface{}{}
	}
	return fields
}

func decodeActivityLog(recID, raw string) []dbmodels.ActivityEvent {
	events := []dbmodels.ActivityEvent{}
	if strings.TrimSpace(raw) == "" {
		return events
	}
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		log.WithError(err).
			WithField("application_id", recID).
			Warn("нарушение целостности данных: нечитаемый activity_log, поле заменено пустым списком")
		return []dbmodels.ActivityEvent{}
	}
	return events
}
