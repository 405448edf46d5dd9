package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runHistoryRouter(g *echo.Group, ctrl *controllers.HistoryController) {
	g.GET("/history/by-tag/:tag", ctrl.GetHistory)
}
