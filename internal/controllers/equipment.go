package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/partition"
	"inventory-system/internal/services"
	"inventory-system/pkg/api"
	apperrors "inventory-system/pkg/errors"
)

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	resolverService  services.ResolverServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(
	equipmentService services.EquipmentServiceInterface,
	resolverService services.ResolverServiceInterface,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		equipmentService: equipmentService,
		resolverService:  resolverService,
		logger:           logger,
	}
}

func (c *EquipmentController) GetDisponibles(ctx echo.Context) error {
	rows, err := c.equipmentService.GetDisponibles(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetDisponibles: error listando disponibles", zap.Error(err))
		return api.ErrorResponse(ctx, apperrors.NewHttpError(
			http.StatusInternalServerError, "no se pudo obtener la lista de disponibles", err, nil))
	}
	return api.SuccessList(ctx, "disponibles obtenidos", dto.FromEquipments(rows, partition.Available))
}

func (c *EquipmentController) FindByServiceTag(ctx echo.Context) error {
	tag := ctx.Param("tag")
	if tag == "" {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(
			http.StatusBadRequest, "el service tag es obligatorio", apperrors.ErrBadRequest, nil))
	}

	rec, p, err := c.resolverService.FindByServiceTag(ctx.Request().Context(), tag, partition.LookupOrder)
	if err != nil {
		c.logger.Debug("FindByServiceTag: sin resultado", zap.String("servicio_cpu", tag), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "equipo encontrado", dto.FromEquipment(*rec, p))
}
