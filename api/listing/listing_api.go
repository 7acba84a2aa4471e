package listing

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storeadmin.GO/api"
	"storeadmin.GO/core/cache"
	"storeadmin.GO/listing"
	"storeadmin.GO/resource"
)

func init() {
	api.RegisterModule(RegisterListingRoutes)
}

// optionsTTL bounds how long reference option sets are served from cache.
const optionsTTL = 30

func RegisterListingRoutes(apiGroup *echo.Group, deps api.Deps) {
	apiGroup.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	apiGroup.GET("/resources", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"resources": resource.All()})
	})

	apiGroup.GET("/resources/:resource", func(c echo.Context) error {
		desc, ok := resource.Lookup(c.Param("resource"))
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown resource"})
		}
		state := listing.ParseQuery(c.QueryParams())

		// Each request is its own view instance: concurrent clients with
		// different queries must never see each other's rows. Generation
		// based stale suppression applies within one long-lived view
		// (HTML console, CLI), not across independent HTTP requests.
		ctrl := listing.NewController(deps.Client, desc)
		res, err := ctrl.Fetch(c.Request().Context(), state)
		if err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{
				"error": err.Error(),
				"rows":  []interface{}{},
				"count": 0,
			})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"rows":        res.Rows,
			"count":       res.Count,
			"page":        state.Page,
			"page_size":   state.PageSize,
			"total_pages": state.TotalPages(res.Count),
			"warnings":    res.Warnings,
		})
	})

	apiGroup.GET("/resources/:resource/metadata", func(c echo.Context) error {
		desc, ok := resource.Lookup(c.Param("resource"))
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown resource"})
		}

		store := cache.GetInstance()
		if v, ok := store.GetN("options", desc.Name); ok {
			if sets, ok := v.(listing.OptionSets); ok {
				return c.JSON(http.StatusOK, sets)
			}
		}

		sets := listing.LoadOptions(c.Request().Context(), deps.Client, desc)
		// Only fully successful loads are cached; failures stay retryable.
		if len(sets.Warnings) == 0 {
			store.SetN([]interface{}{"options", desc.Name}, sets, optionsTTL, []string{"options"})
		}
		return c.JSON(http.StatusOK, sets)
	})

	apiGroup.DELETE("/resources/:resource/:id", func(c echo.Context) error {
		desc, ok := resource.Lookup(c.Param("resource"))
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown resource"})
		}
		id := c.Param("id")
		if err := deps.Client.Delete(c.Request().Context(), desc.Endpoint, id); err != nil {
			api.RecordAudit(deps, desc.Name, "delete", id, "failed", err.Error())
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		api.RecordAudit(deps, desc.Name, "delete", id, "success", "")
		return c.JSON(http.StatusOK, echo.Map{"id": id, "deleted": true})
	})
}
