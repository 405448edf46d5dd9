package controllers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/services"
	"inventory-system/pkg/api"
	apperrors "inventory-system/pkg/errors"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AttachmentController struct {
	attachmentService services.AttachmentServiceInterface
	logger            *zap.Logger
}

func NewAttachmentController(attachmentService services.AttachmentServiceInterface, logger *zap.Logger) *AttachmentController {
	return &AttachmentController{
		attachmentService: attachmentService,
		logger:            logger,
	}
}

func (c *AttachmentController) GetActa(ctx echo.Context) error {
	tag := ctx.Param("tag")

	path, err := c.attachmentService.ActaPath(ctx.Request().Context(), tag)
	if err != nil {
		c.logger.Debug("GetActa: acta no disponible", zap.String("servicio_cpu", tag), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return ctx.File(path)
}

func (c *AttachmentController) UploadActa(ctx echo.Context) error {
	tag := ctx.Param("tag")

	fileHeader, err := ctx.FormFile("acta")
	if err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(
			http.StatusBadRequest, "el archivo del acta es obligatorio", err, nil))
	}
	src, err := fileHeader.Open()
	if err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(
			http.StatusBadRequest, "no se pudo leer el archivo del acta", err, nil))
	}
	defer src.Close()

	ruta, err := c.attachmentService.SaveActa(ctx.Request().Context(), tag, src, fileHeader.Filename)
	if err != nil {
		c.logger.Error("UploadActa: no se pudo guardar el acta",
			zap.String("servicio_cpu", tag), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "acta registrada",
		map[string]string{"ruta_acta": ruta})
}

func (c *AttachmentController) GetHojaVida(ctx echo.Context) error {
	tag := ctx.Param("tag")

	fileName, data, err := c.attachmentService.HojaVida(ctx.Request().Context(), tag)
	if err != nil {
		c.logger.Debug("GetHojaVida: hoja de vida no disponible",
			zap.String("servicio_cpu", tag), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, fileName))
	return ctx.Blob(http.StatusOK, xlsxMIME, data)
}
