package dashboard

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"storeadmin.GO/api"
	"storeadmin.GO/service/dashboard"
)

func init() {
	api.RegisterModule(RegisterDashboardRoutes)
}

func RegisterDashboardRoutes(apiGroup *echo.Group, deps api.Deps) {
	apiGroup.GET("/dashboard", func(c echo.Context) error {
		if snap, ok := dashboard.Load(); ok {
			return c.JSON(http.StatusOK, snap)
		}
		// No snapshot yet (fresh boot, cron not run). Collect inline once
		// rather than serving a 404 to the first operator of the day.
		snap := dashboard.Collect(c.Request().Context(), deps.Client)
		if err := dashboard.Store(snap); err != nil {
			log.Printf("dashboard: store failed: %v", err)
		}
		return c.JSON(http.StatusOK, snap)
	})

	apiGroup.POST("/dashboard/refresh", func(c echo.Context) error {
		snap := dashboard.Collect(c.Request().Context(), deps.Client)
		if err := dashboard.Store(snap); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, snap)
	})
}
