package controllers

import (
	"net/http"

	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/partition"
	"inventory-system/internal/services"
	"inventory-system/pkg/api"
	apperrors "inventory-system/pkg/errors"
)

type AssignmentController struct {
	equipmentService  services.EquipmentServiceInterface
	transitionService services.TransitionServiceInterface
	logger            *zap.Logger
}

func NewAssignmentController(
	equipmentService services.EquipmentServiceInterface,
	transitionService services.TransitionServiceInterface,
	logger *zap.Logger,
) *AssignmentController {
	return &AssignmentController{
		equipmentService:  equipmentService,
		transitionService: transitionService,
		logger:            logger,
	}
}

func (c *AssignmentController) GetAsignaciones(ctx echo.Context) error {
	rows, err := c.equipmentService.GetAsignaciones(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetAsignaciones: error listando asignaciones", zap.Error(err))
		return api.ErrorResponse(ctx, apperrors.NewHttpError(
			http.StatusInternalServerError, "no se pudo obtener la lista de asignaciones", err, nil))
	}

	out := make([]dto.EquipmentDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.FromEquipment(row.Equipment, row.Particion))
	}
	return api.SuccessList(ctx, "asignaciones obtenidas", out)
}

func (c *AssignmentController) GetAsignacionesPorCategoria(ctx echo.Context) error {
	p, err := partition.FromCategorySlug(ctx.Param("categoria"))
	if err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(
			http.StatusBadRequest, "categoría de asignación desconocida", err,
			map[string]interface{}{"categoria": ctx.Param("categoria")}))
	}

	rows, err := c.equipmentService.GetAsignacionesPorParticion(ctx.Request().Context(), p)
	if err != nil {
		c.logger.Error("GetAsignacionesPorCategoria: error listando",
			zap.String("particion", p.Table()), zap.Error(err))
		return api.ErrorResponse(ctx, apperrors.NewHttpError(
			http.StatusInternalServerError, "no se pudo obtener la lista de asignaciones", err, nil))
	}
	return api.SuccessList(ctx, "asignaciones obtenidas", dto.FromEquipments(rows, p))
}

func (c *AssignmentController) CreateAsignacion(ctx echo.Context) error {
	var body dto.CreateAsignacionDTO
	if err := ctx.Bind(&body); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(
			http.StatusBadRequest, "formato inválido en el cuerpo de la solicitud", err, nil))
	}
	if err := ctx.Validate(&body); err != nil {
		return api.ErrorResponse(ctx, err)
	}

	cmd := services.AssignCommand{
		DisponibleID: body.DisponibleID,
		Funcionario: entities.AssignmentInfo{
			NombreFuncionario: null.StringFrom(body.NombreFuncionario),
			Cedula:            null.NewString(body.Cedula, body.Cedula != ""),
			Correo:            null.NewString(body.Correo, body.Correo != ""),
			Dependencia:       null.NewString(body.Dependencia, body.Dependencia != ""),
			Jefe:              null.NewString(body.Jefe, body.Jefe != ""),
		},
		RutaActa: null.NewString(body.RutaActa, body.RutaActa != ""),
	}
	if body.Acta != "" {
		cmd.Acta = entities.ParseActa(body.Acta)
	}

	moved, err := c.transitionService.Assign(ctx.Request().Context(), cmd)
	if err != nil {
		c.logger.Error("CreateAsignacion: la asignación falló",
			zap.Int64("disponible_id", body.DisponibleID), zap.Error(err))
		return api.ErrorResponse(ctx, err)
	}

	dest, _ := partition.ForCategory(moved.Tipo)
	return api.SuccessOne(ctx, http.StatusCreated, "equipo asignado", dto.FromEquipment(*moved, dest))
}
