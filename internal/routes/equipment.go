package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runEquipmentRouter(g *echo.Group, equipmentCtrl *controllers.EquipmentController, transitionCtrl *controllers.TransitionController) {
	g.GET("/disponibles", equipmentCtrl.GetDisponibles)
	g.GET("/equipment/by-tag/:tag", equipmentCtrl.FindByServiceTag)

	g.POST("/damage/by-tag/:tag", transitionCtrl.ReportDamage)
	g.POST("/equipment/repair/:tag", transitionCtrl.Repair)
	g.POST("/equipment/:id/mark-damaged", transitionCtrl.MarkDamaged)
}
