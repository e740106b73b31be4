package applicationapimodels

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"job-tracker-backend/models"
	dbmodels "job-tracker-backend/models/db"
)

func TestConvert(t *testing.T) {
	t.Run(`requiredFields и activityLog проходят encode/decode без потерь`, func(t *testing.T) {
		requiredFields := map[string]interface{}{
			"automationFrameworks": []interface{}{"Playwright", "Cypress"},
			"experienceYears":      float64(3),
			"nested": map[string]interface{}{
				"deep":  []interface{}{},
				"empty": map[string]interface{}{},
			},
		}
		requiredFieldsBody, err := json.Marshal(requiredFields)
		require.NoError(t, err)

		date := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
		activityLog, err := dbmodels.NewActivityLog(
			dbmodels.ActivityEvent{Event: models.ActivityEventCreated, From: "", To: "Applied", Date: date},
			dbmodels.ActivityEvent{Event: models.ActivityEventStatusChange, From: "Applied", To: "Offer", Date: date},
		)
		require.NoError(t, err)

		view := Convert(dbmodels.Application{
			BaseModel:      dbmodels.BaseModel{ID: "app-1"},
			RequiredFields: string(requiredFieldsBody),
			ActivityLog:    activityLog,
		})
		require.Equal(t, requiredFields, view.RequiredFields)
		require.Len(t, view.ActivityLog, 2)
		require.Equal(t, models.ActivityEventStatusChange, view.ActivityLog[1].Event)

		// обратная сериализация дает исходный текст
		encoded, err := json.Marshal(view.RequiredFields)
		require.NoError(t, err)
		require.JSONEq(t, string(requiredFieldsBody), string(encoded))
		encodedLog, err := json.Marshal(view.ActivityLog)
		require.NoError(t, err)
		require.JSONEq(t, activityLog, string(encodedLog))
	})

	t.Run(`пустые поля декодируются в пустые значения`, func(t *testing.T) {
		view := Convert(dbmodels.Application{})
		require.Equal(t, map[string]interface{}{}, view.RequiredFields)
		require.Equal(t, []dbmodels.ActivityEvent{}, view.ActivityLog)
		require.NotNil(t, view.Notes)
		require.NotNil(t, view.Interviews)
		require.NotNil(t, view.Attachments)
	})

	t.Run(`нечитаемый JSON заменяется пустым значением`, func(t *testing.T) {
		view := Convert(dbmodels.Application{
			BaseModel:      dbmodels.BaseModel{ID: "app-1"},
			RequiredFields: "{broken",
			ActivityLog:    "[broken",
		})
		require.Equal(t, map[string]interface{}{}, view.RequiredFields)
		require.Equal(t, []dbmodels.ActivityEvent{}, view.ActivityLog)
	})

	t.Run(`дочерние записи попадают во view`, func(t *testing.T) {
		now := time.Now()
		view := Convert(dbmodels.Application{
			Notes:       []dbmodels.Note{{Text: "note", AuthorID: "user-1"}},
			Interviews:  []dbmodels.Interview{{Type: "Technical", Mode: "Zoom", Status: "Scheduled", Date: now}},
			Attachments: []dbmodels.Attachment{{Filename: "cv.pdf", URL: "app-1/cv.pdf", UploadedAt: now}},
		})
		require.Len(t, view.Notes, 1)
		require.Equal(t, "note", view.Notes[0].Text)
		require.Len(t, view.Interviews, 1)
		require.Equal(t, "Technical", view.Interviews[0].Type)
		require.Len(t, view.Attachments, 1)
		require.Equal(t, "cv.pdf", view.Attachments[0].Filename)
	})
}

func TestFlatTags(t *testing.T) {
	t.Run(`список склеивается через запятую`, func(t *testing.T) {
		req := CreateApplicationRequest{Tags: []interface{}{"remote", "qa", "senior"}}
		require.Equal(t, "remote,qa,senior", req.FlatTags())
	})
	t.Run(`строка сохраняется как есть`, func(t *testing.T) {
		req := CreateApplicationRequest{Tags: "remote,qa"}
		require.Equal(t, "remote,qa", req.FlatTags())
	})
	t.Run(`отсутствие меток дает пустую строку`, func(t *testing.T) {
		req := CreateApplicationRequest{}
		require.Equal(t, "", req.FlatTags())
	})
}
