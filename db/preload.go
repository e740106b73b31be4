package db

import (
	"encoding/json"
	"time"

	log "github.com/sirupsen/logrus"

	"job-tracker-backend/config"
	"job-tracker-backend/models"
	dbmodels "job-tracker-backend/models/db"
)

func InitPreload() {
	fillDemoApplications()
}

// fillDemoApplications наполняет пустую БД демонстрационными откликами
func fillDemoApplications() {
	if config.Conf.Database.SeedDemoData == nil || !*config.Conf.Database.SeedDemoData {
		return
	}
	var count int64
	if err := DB.Model(&dbmodels.Application{}).Count(&count).Error; err != nil {
		log.WithError(err).Error("ошибка проверки наличия демоданных")
		return
	}
	if count > 0 {
		return
	}

	userID := config.Conf.Identity.DefaultUserID
	orgID := config.Conf.Identity.DefaultOrgID

	salaryMin1, salaryMax1 := 120000, 150000
	contactName := "Alice Recruiter"
	requiredFields1, _ := json.Marshal(map[string]interface{}{
		"automationFrameworks": []string{"Playwright", "Cypress"},
		"programmingLanguages": []string{"TypeScript", "Python"},
		"repoLink":             "https://github.com/jdoe/portfolio",
	})
	activityLog1, _ := dbmodels.NewActivityLog(dbmodels.ActivityEvent{
		Event: models.ActivityEventCreated,
		From:  "",
		To:    string(models.StatusTechnical),
		Date:  time.Now(),
	})
	first := dbmodels.Application{
		UserID:         userID,
		OrganizationID: orgID,
		RoleType:       "Automation QA",
		Company:        "TechCorp",
		JobTitle:       "Senior Automation Engineer",
		Location:       "Remote",
		Source:         "LinkedIn",
		Status:         models.StatusTechnical,
		Priority:       models.PriorityHigh,
		SalaryMin:      &salaryMin1,
		SalaryMax:      &salaryMax1,
		ContactName:    &contactName,
		RequiredFields: string(requiredFields1),
		ActivityLog:    activityLog1,
		Notes: []dbmodels.Note{
			{Text: "Passed phone screen comfortably.", AuthorID: userID},
		},
		Interviews: []dbmodels.Interview{
			{Type: "Phone Screen", Date: time.Now().Add(-24 * time.Hour), Status: "Completed", Mode: "Zoom"},
			{Type: "Technical", Date: time.Now().Add(24 * time.Hour), Status: "Scheduled", Mode: "Google Meet"},
		},
	}
	if err := DB.Create(&first).Error; err != nil {
		log.WithError(err).Error("ошибка создания демоданных")
		return
	}

	salaryMin2, salaryMax2 := 60000, 80000
	requiredFields2, _ := json.Marshal(map[string]interface{}{
		"experienceYears":       1,
		"manualTestingSkills":   []string{"Black box", "Regression"},
		"willingnessToRelocate": true,
	})
	activityLog2, _ := dbmodels.NewActivityLog(dbmodels.ActivityEvent{
		Event: models.ActivityEventCreated,
		From:  "",
		To:    string(models.StatusApplied),
		Date:  time.Now(),
	})
	second := dbmodels.Application{
		UserID:         userID,
		OrganizationID: orgID,
		RoleType:       "Junior QA",
		Company:        "StartUp Inc",
		JobTitle:       "QA Tester",
		Location:       "New York, NY",
		Source:         "Indeed",
		Status:         models.StatusApplied,
		Priority:       models.PriorityMedium,
		SalaryMin:      &salaryMin2,
		SalaryMax:      &salaryMax2,
		RequiredFields: string(requiredFields2),
		ActivityLog:    activityLog2,
	}
	if err := DB.Create(&second).Error; err != nil {
		log.WithError(err).Error("ошибка создания демоданных")
		return
	}
	log.Info("Демоданные успешно добавлены")
}
