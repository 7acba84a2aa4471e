package html

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"storeadmin.GO/api"
	"storeadmin.GO/listing"
	"storeadmin.GO/resource"
	"storeadmin.GO/service/dashboard"
)

func init() {
	api.RegisterRoute(RegisterConsoleRoutes)
}

// RegisterConsoleRoutes serves the server-rendered console pages. The JSON
// API under /api is the primary surface; these pages are a thin read-only
// fallback for browsing without the SPA.
func RegisterConsoleRoutes(e *echo.Echo, deps api.Deps) {
	e.GET("/console", func(c echo.Context) error {
		snap, _ := dashboard.Load()
		return c.Render(http.StatusOK, "index.html", map[string]interface{}{
			"Resources": resource.All(),
			"Counts":    snap.Counts,
		})
	})

	e.GET("/console/:resource", func(c echo.Context) error {
		desc, ok := resource.Lookup(c.Param("resource"))
		if !ok {
			return c.String(http.StatusNotFound, "Unknown resource")
		}

		state := listing.ParseQuery(c.QueryParams())
		ctrl := listing.NewController(deps.Client, desc)
		res, err := ctrl.Fetch(c.Request().Context(), state)
		if err != nil {
			log.Println("console list error:", err)
		}

		totalPages := state.TotalPages(res.Count)
		data := map[string]interface{}{
			"Resource":   desc,
			"Rows":       res.Rows,
			"Count":      res.Count,
			"Warnings":   res.Warnings,
			"Page":       state.Page,
			"TotalPages": totalPages,
			"Query":      state.Values().Encode(),
		}
		if err != nil {
			data["Error"] = err.Error()
		}
		if state.Page > 1 {
			data["PrevQuery"] = state.GoToPage(state.Page - 1).Values().Encode()
		}
		if state.Page < totalPages {
			data["NextQuery"] = state.GoToPage(state.Page + 1).Values().Encode()
		}
		return c.Render(http.StatusOK, "list.html", data)
	})
}
