package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"job-tracker-backend/controllers"
	filestorage "job-tracker-backend/lib/file-storage"
	apimodels "job-tracker-backend/models/api"
)

type attachmentApiController struct {
	controllers.BaseAPIController
}

func InitAttachmentApiRouters(app fiber.Router) {
	controller := attachmentApiController{}
	app.Route("applications/:id/attachments", func(router fiber.Router) {
		router.Post("", controller.upload) // загрузить вложение
		router.Get("", controller.list)    // список вложений отклика
	})
	app.Get("attachments/:id", controller.download) // скачать вложение по id
}

// @Summary Загрузить вложение
// @Tags Вложения
// @Param   id		path		string	true	"ID отклика"
// @Param   file	formData	file	true	"file to upload"
// @Success 200 {object} applicationapimodels.AttachmentView
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/applications/{id}/attachments [post]
func (c *attachmentApiController) upload(ctx *fiber.Ctx) error {
	applicationID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("ошибка при получении файла вложения")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("ошибка при загрузке файла вложения")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	view, err := filestorage.Instance.Upload(ctx.UserContext(), applicationID, fileBody, file.Filename, file.Header.Get(fiber.HeaderContentType))
	if err != nil {
		log.WithError(err).WithField("application_id", applicationID).Error("ошибка загрузки вложения")
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewErrorDetails("не удалось загрузить вложение", err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(view)
}

// @Summary Список вложений отклика
// @Tags Вложения
// @Param   id	path	string	true	"ID отклика"
// @Success 200 {array} applicationapimodels.AttachmentView
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/applications/{id}/attachments [get]
func (c *attachmentApiController) list(ctx *fiber.Ctx) error {
	applicationID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := filestorage.Instance.List(applicationID)
	if err != nil {
		log.WithError(err).WithField("application_id", applicationID).Error("ошибка получения списка вложений")
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("не удалось получить список вложений"))
	}
	return ctx.Status(fiber.StatusOK).JSON(list)
}

// @Summary Скачать вложение
// @Tags Вложения
// @Param   id	path	string	true	"ID вложения"
// @Success 200
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/attachments/{id} [get]
func (c *attachmentApiController) download(ctx *fiber.Ctx) error {
	attachmentID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, fileName, contentType, err := filestorage.Instance.GetFile(ctx.UserContext(), attachmentID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewErrorDetails("не удалось скачать вложение", err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, contentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(body)
}
