package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/partition"
	"inventory-system/internal/services"
	"inventory-system/pkg/api"
	apperrors "inventory-system/pkg/errors"
)

type TransitionController struct {
	transitionService services.TransitionServiceInterface
	logger            *zap.Logger
}

func NewTransitionController(transitionService services.TransitionServiceInterface, logger *zap.Logger) *TransitionController {
	return &TransitionController{
		transitionService: transitionService,
		logger:            logger,
	}
}

func (c *TransitionController) ReportDamage(ctx echo.Context) error {
	tag := ctx.Param("tag")

	var body dto.ReportDamageDTO
	if err := ctx.Bind(&body); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(
			http.StatusBadRequest, "formato inválido en el cuerpo de la solicitud", err, nil))
	}

	moved, err := c.transitionService.ReportDamage(ctx.Request().Context(), tag, body.Observaciones)
	if err != nil {
		c.logger.Error("ReportDamage: el reporte de daño falló",
			zap.String("servicio_cpu", tag), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "daño reportado", dto.FromEquipment(*moved, partition.Damaged))
}

func (c *TransitionController) MarkDamaged(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return api.ErrorResponse(ctx,
			apperrors.NewInvalidInputError("formato inválido del ID de disponible: %s", ctx.Param("id")))
	}

	var body dto.ReportDamageDTO
	if err := ctx.Bind(&body); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(
			http.StatusBadRequest, "formato inválido en el cuerpo de la solicitud", err, nil))
	}

	moved, err := c.transitionService.MarkDamagedByID(ctx.Request().Context(), id, body.Observaciones)
	if err != nil {
		c.logger.Error("MarkDamaged: el marcado de daño falló",
			zap.Int64("disponible_id", id), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "equipo marcado como dañado", dto.FromEquipment(*moved, partition.Damaged))
}

func (c *TransitionController) Repair(ctx echo.Context) error {
	tag := ctx.Param("tag")

	var body dto.RepairDTO
	if err := ctx.Bind(&body); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(
			http.StatusBadRequest, "formato inválido en el cuerpo de la solicitud", err, nil))
	}
	if err := ctx.Validate(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	moved, err := c.transitionService.Repair(ctx.Request().Context(), tag, body.RepairNotes)
	if err != nil {
		c.logger.Error("Repair: la reparación falló",
			zap.String("servicio_cpu", tag), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "equipo reparado", dto.FromEquipment(*moved, partition.Available))
}
