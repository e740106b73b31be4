package apiv1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"job-tracker-backend/config"
	"job-tracker-backend/db"
	"job-tracker-backend/lib/analytics"
	"job-tracker-backend/lib/application"
	"job-tracker-backend/middleware"
	applicationapimodels "job-tracker-backend/models/api/application"
	dbmodels "job-tracker-backend/models/db"
)

func newTestApp(t *testing.T) *fiber.App {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	err = gdb.AutoMigrate(&dbmodels.Application{}, &dbmodels.Note{}, &dbmodels.Interview{}, &dbmodels.Attachment{})
	require.NoError(t, err)

	config.Conf = &config.Configuration{}
	config.Conf.Identity.DefaultUserID = "demo-user"
	config.Conf.Identity.DefaultOrgID = "demo-org"

	db.DB = gdb
	application.NewHandler()
	analytics.NewHandler()

	app := fiber.New()
	app.Use(middleware.Identity())
	InitApplicationApiRouters(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, out interface{}) int {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestApplicationApi(t *testing.T) {
	t.Run(`health`, func(t *testing.T) {
		app := newTestApp(t)
		result := map[string]interface{}{}
		code := doJSON(t, app, "GET", "/health", nil, &result)
		require.Equal(t, fiber.StatusOK, code)
		require.Equal(t, "ok", result["status"])
		require.NotEmpty(t, result["timestamp"])
	})

	t.Run(`создание и листинг через HTTP`, func(t *testing.T) {
		app := newTestApp(t)
		created := applicationapimodels.ApplicationView{}
		code := doJSON(t, app, "POST", "/applications", map[string]interface{}{
			"roleType": "Automation QA",
			"company":  "TechCorp",
			"jobTitle": "SDET",
			"tags":     []string{"remote", "qa"},
		}, &created)
		require.Equal(t, fiber.StatusOK, code)
		require.NotEmpty(t, created.ID)
		require.Equal(t, "Applied", string(created.Status))
		require.Equal(t, "demo-user", created.UserID)
		require.Equal(t, "remote,qa", created.Tags)
		require.Len(t, created.ActivityLog, 1)

		list := []applicationapimodels.ApplicationView{}
		code = doJSON(t, app, "GET", "/applications", nil, &list)
		require.Equal(t, fiber.StatusOK, code)
		require.Len(t, list, 1)
		require.Equal(t, created.ID, list[0].ID)
	})

	t.Run(`обновление статуса через HTTP`, func(t *testing.T) {
		app := newTestApp(t)
		created := applicationapimodels.ApplicationView{}
		code := doJSON(t, app, "POST", "/applications", map[string]interface{}{
			"company": "TechCorp",
		}, &created)
		require.Equal(t, fiber.StatusOK, code)

		updated := applicationapimodels.ApplicationView{}
		code = doJSON(t, app, "PUT", "/applications/"+created.ID, map[string]interface{}{
			"status": "Offer",
		}, &updated)
		require.Equal(t, fiber.StatusOK, code)
		require.Equal(t, "Offer", string(updated.Status))
		require.Len(t, updated.ActivityLog, 2)
	})

	t.Run(`обновление несуществующего отклика дает ошибку`, func(t *testing.T) {
		app := newTestApp(t)
		result := map[string]interface{}{}
		code := doJSON(t, app, "PUT", "/applications/nonexistent-id", map[string]interface{}{
			"status": "Offer",
		}, &result)
		require.Equal(t, fiber.StatusInternalServerError, code)
		require.NotEmpty(t, result["error"])
	})

	t.Run(`некорректный email дает 400`, func(t *testing.T) {
		app := newTestApp(t)
		result := map[string]interface{}{}
		code := doJSON(t, app, "POST", "/applications", map[string]interface{}{
			"company":      "TechCorp",
			"contactEmail": "not-an-email",
		}, &result)
		require.Equal(t, fiber.StatusBadRequest, code)
		require.NotEmpty(t, result["error"])
	})

	t.Run(`аналитика после создания двух откликов`, func(t *testing.T) {
		app := newTestApp(t)
		for _, payload := range []map[string]interface{}{
			{"company": "TechCorp", "roleType": "Automation QA", "status": "Applied"},
			{"company": "StartUp Inc", "roleType": "Junior QA", "status": "Technical"},
		} {
			code := doJSON(t, app, "POST", "/applications", payload, nil)
			require.Equal(t, fiber.StatusOK, code)
		}

		view := applicationapimodels.AnalyticsView{}
		code := doJSON(t, app, "GET", "/analytics", nil, &view)
		require.Equal(t, fiber.StatusOK, code)
		require.EqualValues(t, 2, view.TotalApps)
		require.Contains(t, view.ByStatus, applicationapimodels.StatusCount{Status: "Applied", Count: 1})
		require.Contains(t, view.ByStatus, applicationapimodels.StatusCount{Status: "Technical", Count: 1})
	})

	t.Run(`заметки и интервью через HTTP`, func(t *testing.T) {
		app := newTestApp(t)
		created := applicationapimodels.ApplicationView{}
		code := doJSON(t, app, "POST", "/applications", map[string]interface{}{"company": "TechCorp"}, &created)
		require.Equal(t, fiber.StatusOK, code)

		note := applicationapimodels.NoteView{}
		code = doJSON(t, app, "POST", "/applications/"+created.ID+"/notes", map[string]interface{}{
			"text": "Passed phone screen comfortably.",
		}, &note)
		require.Equal(t, fiber.StatusOK, code)
		require.Equal(t, "demo-user", note.AuthorID)

		interview := applicationapimodels.InterviewView{}
		code = doJSON(t, app, "POST", "/applications/"+created.ID+"/interviews", map[string]interface{}{
			"type":   "Phone Screen",
			"mode":   "Zoom",
			"status": "Scheduled",
			"date":   "2026-09-01T10:00:00Z",
		}, &interview)
		require.Equal(t, fiber.StatusOK, code)
		require.Equal(t, "Phone Screen", interview.Type)

		list := []applicationapimodels.ApplicationView{}
		code = doJSON(t, app, "GET", "/applications", nil, &list)
		require.Equal(t, fiber.StatusOK, code)
		require.Len(t, list, 1)
		require.Len(t, list[0].Notes, 1)
		require.Len(t, list[0].Interviews, 1)
	})
}
