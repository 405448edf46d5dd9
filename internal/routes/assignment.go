package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runAssignmentRouter(g *echo.Group, ctrl *controllers.AssignmentController) {
	g.GET("/asignaciones", ctrl.GetAsignaciones)
	g.GET("/asignaciones/:categoria", ctrl.GetAsignacionesPorCategoria)
	g.POST("/asignaciones", ctrl.CreateAsignacion)
}
