package views

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"storeadmin.GO/api"
	viewsRepo "storeadmin.GO/model/repository/views"
	"storeadmin.GO/resource"
)

func init() {
	api.RegisterModule(RegisterViewRoutes)
}

// RegisterViewRoutes exposes saved filter presets. The store is local; a
// console without a database runs fine, these endpoints just report 503.
func RegisterViewRoutes(apiGroup *echo.Group, deps api.Deps) {
	apiGroup.GET("/resources/:resource/views", func(c echo.Context) error {
		desc, ok := resource.Lookup(c.Param("resource"))
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown resource"})
		}
		if deps.DB == nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "saved views need a configured database"})
		}
		list, err := viewsRepo.NewViewRepository(deps.DB).ListByResource(desc.Name)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"views": list})
	})

	apiGroup.POST("/resources/:resource/views", func(c echo.Context) error {
		desc, ok := resource.Lookup(c.Param("resource"))
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown resource"})
		}
		if deps.DB == nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "saved views need a configured database"})
		}

		var in struct {
			Name  string `json:"name"`
			Query string `json:"query"`
		}
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "body must be {name, query}"})
		}
		if strings.TrimSpace(in.Name) == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required", "field": "name"})
		}
		if _, err := url.ParseQuery(in.Query); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "query is not a valid query string", "field": "query"})
		}

		v, err := viewsRepo.NewViewRepository(deps.DB).Save(desc.Name, strings.TrimSpace(in.Name), in.Query)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, v)
	})

	apiGroup.DELETE("/resources/:resource/views/:id", func(c echo.Context) error {
		if _, ok := resource.Lookup(c.Param("resource")); !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown resource"})
		}
		if deps.DB == nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "saved views need a configured database"})
		}
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "id must be numeric"})
		}
		if err := viewsRepo.NewViewRepository(deps.DB).Delete(uint(id)); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"deleted": true})
	})
}
