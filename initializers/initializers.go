package initializers

import (
	"context"

	"job-tracker-backend/config"
	"job-tracker-backend/fiberlog"
	"job-tracker-backend/lib/analytics"
	"job-tracker-backend/lib/application"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	application.NewHandler()
	analytics.NewHandler()
}
