package application

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"job-tracker-backend/db"
	applicationstore "job-tracker-backend/lib/application/store"
	interviewstore "job-tracker-backend/lib/interview/store"
	notestore "job-tracker-backend/lib/note/store"
	"job-tracker-backend/models"
	applicationapimodels "job-tracker-backend/models/api/application"
	dbmodels "job-tracker-backend/models/db"
)

type Provider interface {
	List(userID, orgID string) ([]applicationapimodels.ApplicationView, error)
	Create(userID, orgID string, req applicationapimodels.CreateApplicationRequest) (applicationapimodels.ApplicationView, error)
	Update(id string, req applicationapimodels.UpdateApplicationRequest) (applicationapimodels.ApplicationView, error)
	AddNote(applicationID string, req applicationapimodels.CreateNoteRequest) (applicationapimodels.NoteView, error)
	AddInterview(applicationID string, req applicationapimodels.CreateInterviewRequest) (applicationapimodels.InterviewView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          applicationstore.NewInstance(db.DB),
		noteStore:      notestore.NewInstance(db.DB),
		interviewStore: interviewstore.NewInstance(db.DB),
	}
}

type impl struct {
	store          applicationstore.Provider
	noteStore      notestore.Provider
	interviewStore interviewstore.Provider
}

func (i impl) List(userID, orgID string) ([]applicationapimodels.ApplicationView, error) {
	list, err := i.store.List(userID, orgID)
	if err != nil {
		return nil, err
	}
	result := make([]applicationapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicationapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) Create(userID, orgID string, req applicationapimodels.CreateApplicationRequest) (applicationapimodels.ApplicationView, error) {
	status := req.Status
	if status == "" {
		status = models.StatusApplied
	}

	requiredFields := req.RequiredFields
	if requiredFields == nil {
		requiredFields = map[string]interface{}{}
	}
	requiredFieldsBody, err := json.Marshal(requiredFields)
	if err != nil {
		return applicationapimodels.ApplicationView{}, errors.Wrap(err, "ошибка сериализации requiredFields")
	}

	activityLog, err := dbmodels.NewActivityLog(dbmodels.ActivityEvent{
		Event: models.ActivityEventCreated,
		From:  "",
		To:    string(status),
		Date:  time.Now(),
	})
	if err != nil {
		return applicationapimodels.ApplicationView{}, errors.Wrap(err, "ошибка сериализации журнала событий")
	}

	rec := dbmodels.Application{
		UserID:         userID,
		OrganizationID: orgID,
		RoleType:       req.RoleType,
		Company:        req.Company,
		JobTitle:       req.JobTitle,
		Location:       req.Location,
		Source:         req.Source,
		Status:         status,
		Priority:       req.Priority,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		SalaryCurrency: req.SalaryCurrency,
		ContactName:    req.ContactName,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
		RequiredFields: string(requiredFieldsBody),
		ActivityLog:    activityLog,
		Tags:           req.FlatTags(),
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	return i.getView(id)
}

func (i impl) Update(id string, req applicationapimodels.UpdateApplicationRequest) (applicationapimodels.ApplicationView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if rec == nil {
		return applicationapimodels.ApplicationView{}, applicationstore.ErrNotFound
	}

	// в контракте обновления распознаются только status, priority и requiredFields,
	// прочие поля запроса игнорируются
	updMap := map[string]interface{}{}
	if req.Status != nil {
		updMap["status"] = *req.Status
		if *req.Status != rec.Status {
			activityLog, err := dbmodels.AppendActivity(rec.ActivityLog, dbmodels.ActivityEvent{
				Event: models.ActivityEventStatusChange,
				From:  string(rec.Status),
				To:    string(*req.Status),
				Date:  time.Now(),
			})
			if err != nil {
				// журнал не читается — фиксируем переход с чистого листа
				log.WithError(err).
					WithField("application_id", id).
					Warn("нечитаемый журнал событий, журнал будет перезаписан")
				activityLog, _ = dbmodels.NewActivityLog(dbmodels.ActivityEvent{
					Event: models.ActivityEventStatusChange,
					From:  string(rec.Status),
					To:    string(*req.Status),
					Date:  time.Now(),
				})
			}
			updMap["activity_log"] = activityLog
		}
	}
	if req.Priority != nil {
		updMap["priority"] = *req.Priority
	}
	if req.RequiredFields != nil {
		body, err := json.Marshal(req.RequiredFields)
		if err != nil {
			return applicationapimodels.ApplicationView{}, errors.Wrap(err, "ошибка сериализации requiredFields")
		}
		updMap["required_fields"] = string(body)
	}
	updMap["updated_at"] = time.Now()

	if err := i.store.Update(id, updMap); err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	return i.getView(id)
}

func (i impl) AddNote(applicationID string, req applicationapimodels.CreateNoteRequest) (applicationapimodels.NoteView, error) {
	rec, err := i.store.GetByID(applicationID)
	if err != nil {
		return applicationapimodels.NoteView{}, err
	}
	if rec == nil {
		return applicationapimodels.NoteView{}, applicationstore.ErrNotFound
	}
	note := dbmodels.Note{
		ApplicationID: applicationID,
		Text:          req.Text,
		AuthorID:      req.AuthorID,
	}
	id, err := i.noteStore.Create(note)
	if err != nil {
		return applicationapimodels.NoteView{}, err
	}
	note.ID = id
	return applicationapimodels.NoteView{
		ID:        note.ID,
		Text:      note.Text,
		AuthorID:  note.AuthorID,
		CreatedAt: note.CreatedAt,
	}, nil
}

func (i impl) AddInterview(applicationID string, req applicationapimodels.CreateInterviewRequest) (applicationapimodels.InterviewView, error) {
	rec, err := i.store.GetByID(applicationID)
	if err != nil {
		return applicationapimodels.InterviewView{}, err
	}
	if rec == nil {
		return applicationapimodels.InterviewView{}, applicationstore.ErrNotFound
	}
	interview := dbmodels.Interview{
		ApplicationID: applicationID,
		Type:          req.Type,
		Date:          req.Date,
		Mode:          req.Mode,
		Status:        req.Status,
	}
	id, err := i.interviewStore.Create(interview)
	if err != nil {
		return applicationapimodels.InterviewView{}, err
	}
	interview.ID = id
	return applicationapimodels.InterviewView{
		ID:     interview.ID,
		Type:   interview.Type,
		Date:   interview.Date,
		Mode:   interview.Mode,
		Status: interview.Status,
	}, nil
}

func (i impl) getView(id string) (applicationapimodels.ApplicationView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if rec == nil {
		return applicationapimodels.ApplicationView{}, applicationstore.ErrNotFound
	}
	return applicationapimodels.Convert(*rec), nil
}
