package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/services"
	"inventory-system/pkg/api"
	apperrors "inventory-system/pkg/errors"
)

type HistoryController struct {
	historyService services.HistoryServiceInterface
	logger         *zap.Logger
}

func NewHistoryController(historyService services.HistoryServiceInterface, logger *zap.Logger) *HistoryController {
	return &HistoryController{
		historyService: historyService,
		logger:         logger,
	}
}

// GetHistory responde siempre 200 con la lista de eventos, posiblemente
// vacía; un tag sin historia no es un error.
func (c *HistoryController) GetHistory(ctx echo.Context) error {
	tag := ctx.Param("tag")

	events, err := c.historyService.GetHistory(ctx.Request().Context(), tag)
	if err != nil {
		c.logger.Error("GetHistory: la reconstrucción del historial falló",
			zap.String("servicio_cpu", tag), zap.Error(err))
		return api.ErrorResponse(ctx, apperrors.NewHttpError(
			http.StatusInternalServerError, "no se pudo reconstruir el historial", err, nil))
	}
	return api.SuccessList(ctx, "historial obtenido", events)
}
