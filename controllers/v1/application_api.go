package apiv1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"job-tracker-backend/controllers"
	"job-tracker-backend/db"
	"job-tracker-backend/lib/analytics"
	"job-tracker-backend/lib/application"
	"job-tracker-backend/middleware"
	apimodels "job-tracker-backend/models/api"
	applicationapimodels "job-tracker-backend/models/api/application"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app fiber.Router) {
	controller := applicationApiController{}
	app.Get("health", controller.health)
	app.Get("analytics", controller.analytics)
	app.Route("applications", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Put("", controller.update)
			idRouter.Post("notes", controller.addNote)           // добавить заметку к отклику
			idRouter.Post("interviews", controller.addInterview) // запланировать интервью
		})
	})
}

// @Summary Проверка работоспособности сервиса
// @Tags Служебные
// @Success 200 {object} apimodels.HealthResponse
// @router /api/health [get]
func (c *applicationApiController) health(ctx *fiber.Ctx) error {
	if err := db.PingDB(); err != nil {
		log.WithError(err).Warn("health: БД недоступна")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// @Summary Список откликов
// @Tags Отклики
// @Description Список откликов владельца с заметками, интервью и вложениями, по убыванию даты изменения
// @Success 200 {array} applicationapimodels.ApplicationView
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/applications [get]
func (c *applicationApiController) list(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	orgID := middleware.GetOrgID(ctx)
	list, err := application.Instance.List(userID, orgID)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка откликов")
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("не удалось получить список откликов"))
	}
	return ctx.Status(fiber.StatusOK).JSON(list)
}

// @Summary Создать отклик
// @Tags Отклики
// @Param   body	body	applicationapimodels.CreateApplicationRequest	true	"данные отклика"
// @Success 200 {object} applicationapimodels.ApplicationView
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/applications [post]
func (c *applicationApiController) create(ctx *fiber.Ctx) error {
	req := applicationapimodels.CreateApplicationRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := req.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	orgID := middleware.GetOrgID(ctx)
	view, err := application.Instance.Create(userID, orgID, req)
	if err != nil {
		log.WithError(err).Error("ошибка создания отклика")
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewErrorDetails("не удалось создать отклик", err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(view)
}

// @Summary Обновить отклик
// @Tags Отклики
// @Description Частичное обновление, распознаются только status, priority и requiredFields
// @Param   id		path	string											true	"ID отклика"
// @Param   body	body	applicationapimodels.UpdateApplicationRequest	true	"изменяемые поля"
// @Success 200 {object} applicationapimodels.ApplicationView
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/applications/{id} [put]
func (c *applicationApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	req := applicationapimodels.UpdateApplicationRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := application.Instance.Update(id, req)
	if err != nil {
		log.WithError(err).WithField("application_id", id).Error("ошибка обновления отклика")
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewErrorDetails("не удалось обновить отклик", err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(view)
}

// @Summary Сводная аналитика
// @Tags Аналитика
// @Description Общее число откликов и распределение по статусам и типам ролей
// @Success 200 {object} applicationapimodels.AnalyticsView
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/analytics [get]
func (c *applicationApiController) analytics(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	orgID := middleware.GetOrgID(ctx)
	view, err := analytics.Instance.GetAnalytics(userID, orgID)
	if err != nil {
		log.WithError(err).Error("ошибка получения аналитики")
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("не удалось получить аналитику"))
	}
	return ctx.Status(fiber.StatusOK).JSON(view)
}

// @Summary Добавить заметку
// @Tags Отклики
// @Param   id		path	string										true	"ID отклика"
// @Param   body	body	applicationapimodels.CreateNoteRequest		true	"заметка"
// @Success 200 {object} applicationapimodels.NoteView
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/applications/{id}/notes [post]
func (c *applicationApiController) addNote(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	req := applicationapimodels.CreateNoteRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := req.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if req.AuthorID == "" {
		req.AuthorID = middleware.GetUserID(ctx)
	}
	view, err := application.Instance.AddNote(id, req)
	if err != nil {
		log.WithError(err).WithField("application_id", id).Error("ошибка добавления заметки")
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewErrorDetails("не удалось добавить заметку", err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(view)
}

// @Summary Запланировать интервью
// @Tags Отклики
// @Param   id		path	string											true	"ID отклика"
// @Param   body	body	applicationapimodels.CreateInterviewRequest	true	"интервью"
// @Success 200 {object} applicationapimodels.InterviewView
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/applications/{id}/interviews [post]
func (c *applicationApiController) addInterview(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	req := applicationapimodels.CreateInterviewRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := application.Instance.AddInterview(id, req)
	if err != nil {
		log.WithError(err).WithField("application_id", id).Error("ошибка планирования интервью")
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewErrorDetails("не удалось запланировать интервью", err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(view)
}
