package analytics

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	analyticsstore "job-tracker-backend/lib/analytics/store"
	applicationstore "job-tracker-backend/lib/application/store"
	"job-tracker-backend/models"
	applicationapimodels "job-tracker-backend/models/api/application"
	dbmodels "job-tracker-backend/models/db"
)

func newTestDB(t *testing.T) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	err = gdb.AutoMigrate(&dbmodels.Application{}, &dbmodels.Note{}, &dbmodels.Interview{}, &dbmodels.Attachment{})
	require.NoError(t, err)
	return gdb
}

func createApplication(t *testing.T, gdb *gorm.DB, userID, orgID, roleType string, status models.ApplicationStatus) {
	store := applicationstore.NewInstance(gdb)
	_, err := store.Create(dbmodels.Application{
		UserID:         userID,
		OrganizationID: orgID,
		RoleType:       roleType,
		Company:        "TechCorp",
		Status:         status,
		RequiredFields: "{}",
		ActivityLog:    "[]",
	})
	require.NoError(t, err)
}

func TestGetAnalytics(t *testing.T) {
	t.Run(`пустое хранилище`, func(t *testing.T) {
		gdb := newTestDB(t)
		i := impl{store: analyticsstore.NewInstance(gdb)}

		view, err := i.GetAnalytics("user-1", "org-1")
		require.NoError(t, err)
		require.Zero(t, view.TotalApps)
		require.Empty(t, view.ByStatus)
		require.Empty(t, view.ByRole)
	})

	t.Run(`группировка по статусу и типу роли, статусы без записей не подставляются`, func(t *testing.T) {
		gdb := newTestDB(t)
		i := impl{store: analyticsstore.NewInstance(gdb)}
		createApplication(t, gdb, "user-1", "org-1", "Automation QA", models.StatusApplied)
		createApplication(t, gdb, "user-1", "org-1", "Junior QA", models.StatusTechnical)

		view, err := i.GetAnalytics("user-1", "org-1")
		require.NoError(t, err)
		require.EqualValues(t, 2, view.TotalApps)
		require.Contains(t, view.ByStatus, applicationapimodels.StatusCount{Status: "Applied", Count: 1})
		require.Contains(t, view.ByStatus, applicationapimodels.StatusCount{Status: "Technical", Count: 1})
		require.Len(t, view.ByStatus, 2)
		require.Contains(t, view.ByRole, applicationapimodels.RoleCount{Role: "Automation QA", Count: 1})
		require.Contains(t, view.ByRole, applicationapimodels.RoleCount{Role: "Junior QA", Count: 1})
	})

	t.Run(`суммы по группам равны общему числу записей`, func(t *testing.T) {
		gdb := newTestDB(t)
		i := impl{store: analyticsstore.NewInstance(gdb)}
		statuses := []models.ApplicationStatus{
			models.StatusApplied, models.StatusApplied, models.StatusOffer,
			models.StatusRejected, "Custom Status",
		}
		for n, status := range statuses {
			role := "QA"
			if n%2 == 0 {
				role = "Backend"
			}
			createApplication(t, gdb, "user-1", "org-1", role, status)
		}

		view, err := i.GetAnalytics("user-1", "org-1")
		require.NoError(t, err)
		require.EqualValues(t, len(statuses), view.TotalApps)

		var statusSum int64
		for _, group := range view.ByStatus {
			statusSum += group.Count
		}
		require.Equal(t, view.TotalApps, statusSum)

		var roleSum int64
		for _, group := range view.ByRole {
			roleSum += group.Count
		}
		require.Equal(t, view.TotalApps, roleSum)
	})

	t.Run(`владельцы не видят чужие отклики`, func(t *testing.T) {
		gdb := newTestDB(t)
		i := impl{store: analyticsstore.NewInstance(gdb)}
		createApplication(t, gdb, "user-1", "org-1", "QA", models.StatusApplied)
		createApplication(t, gdb, "user-2", "org-1", "QA", models.StatusApplied)

		view, err := i.GetAnalytics("user-1", "org-1")
		require.NoError(t, err)
		require.EqualValues(t, 1, view.TotalApps)
	})
}
