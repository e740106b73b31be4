package analytics

import (
	"job-tracker-backend/db"
	analyticsstore "job-tracker-backend/lib/analytics/store"
	initchecker "job-tracker-backend/lib/utils/init-checker"
	applicationapimodels "job-tracker-backend/models/api/application"
)

type Provider interface {
	GetAnalytics(userID, orgID string) (applicationapimodels.AnalyticsView, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: analyticsstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store analyticsstore.Provider
}

// GetAnalytics отдает сводку по текущему состоянию хранилища, без кеширования
func (i impl) GetAnalytics(userID, orgID string) (applicationapimodels.AnalyticsView, error) {
	total, err := i.store.TotalCount(userID, orgID)
	if err != nil {
		return applicationapimodels.AnalyticsView{}, err
	}
	byStatus, err := i.store.CountByStatus(userID, orgID)
	if err != nil {
		return applicationapimodels.AnalyticsView{}, err
	}
	byRole, err := i.store.CountByRole(userID, orgID)
	if err != nil {
		return applicationapimodels.AnalyticsView{}, err
	}
	return applicationapimodels.AnalyticsView{
		TotalApps: total,
		ByStatus:  byStatus,
		ByRole:    byRole,
	}, nil
}
