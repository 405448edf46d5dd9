package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runAttachmentRouter(g *echo.Group, ctrl *controllers.AttachmentController) {
	g.GET("/equipment/by-tag/:tag/acta", ctrl.GetActa)
	g.POST("/equipment/by-tag/:tag/acta", ctrl.UploadActa)
	g.GET("/equipment/by-tag/:tag/hoja-vida", ctrl.GetHojaVida)
}
