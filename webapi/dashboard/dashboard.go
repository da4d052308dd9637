// Package dashboard serves the public dashboard statistics.
package dashboard

import (
	dashboardsvc "github.com/autoconnect/backend/pkg/service/dashboard"
	"github.com/gofiber/fiber/v2"
)

func Routes(app *fiber.App, dashboardSvc *dashboardsvc.Service) {
	app.Get("/api/v1/dashboard", Stats(dashboardSvc))
}

// Stats returns the dashboard statistics.
// @Summary Dashboard statistics
// @Description Returns a fixed sample payload; figures are not aggregated from stored data
// @Tags dashboard
// @Produce json
// @Success 200 {object} dashboardsvc.Stats
// @Router /api/v1/dashboard [get]
func Stats(dashboardSvc *dashboardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(dashboardSvc.Stats(c.UserContext()))
	}
}
