package create

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"storeadmin.GO/api"
	entity "storeadmin.GO/model/entity"
	"storeadmin.GO/resource"
	createService "storeadmin.GO/service/create"
	"storeadmin.GO/upstream"
)

func init() {
	api.RegisterModule(RegisterCreateRoutes)
}

func RegisterCreateRoutes(apiGroup *echo.Group, deps api.Deps) {
	apiGroup.POST("/resources/:resource", func(c echo.Context) error {
		desc, ok := resource.Lookup(c.Param("resource"))
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown resource"})
		}

		var draft map[string]string
		if err := c.Bind(&draft); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "draft must be an object of string fields"})
		}

		switch desc.Name {
		case "products":
			return createProduct(c, deps, desc, draft)
		case "customers":
			return createCustomer(c, deps, desc, draft)
		}
		return createGeneric(c, deps, desc, draft)
	})
}

func createGeneric(c echo.Context, deps api.Deps, desc resource.Descriptor, draft map[string]string) error {
	spec, ok := createService.SpecFor(desc.Name)
	if !ok {
		return c.JSON(http.StatusMethodNotAllowed, echo.Map{"error": desc.Label + " cannot be created from the console"})
	}

	form := createService.NewForm(deps.Client, desc, spec)
	form.SetDraft(draft)

	out, err := form.Submit(c.Request().Context())
	if err != nil {
		return createError(c, deps, desc, err)
	}

	outcome := entity.AuditOutcomeSuccess
	if out.Warning != "" {
		outcome = entity.AuditOutcomePartial
	}
	api.RecordAudit(deps, desc.Name, "create", out.ID, outcome, out.Warning)
	return c.JSON(http.StatusCreated, echo.Map{
		"id":      out.ID,
		"message": out.Message,
		"warning": out.Warning,
	})
}

func createProduct(c echo.Context, deps api.Deps, desc resource.Descriptor, draft map[string]string) error {
	in := createService.ProductInput{
		Title:           draft["title"],
		Handle:          draft["handle"],
		Description:     draft["description"],
		Status:          draft["status"],
		CollectionID:    draft["collection_id"],
		TypeID:          draft["type_id"],
		SalesChannelIDs: splitIDs(draft["sales_channels"]),
		TagIDs:          splitIDs(draft["tags"]),
		DefaultVariant: createService.VariantInput{
			Title: draft["variant_title"],
			SKU:   draft["variant_sku"],
		},
	}

	out, err := createService.CreateProduct(c.Request().Context(), deps.Client, in)
	if err != nil {
		return createError(c, deps, desc, err)
	}

	resp := echo.Map{
		"id":       out.ProductID,
		"handle":   out.Handle,
		"attempts": out.Attempts,
		"message":  "Product created",
	}
	outcome := entity.AuditOutcomeSuccess
	if out.VariantErr != nil {
		// Partial success: the product exists, the operator finishes the
		// variant manually with the exposed id.
		outcome = entity.AuditOutcomePartial
		resp["warning"] = "product created (id " + out.ProductID + "), but the default variant failed: " + out.VariantErr.Error()
	}
	api.RecordAudit(deps, desc.Name, "create", out.ProductID, outcome, asString(resp["warning"]))
	return c.JSON(http.StatusCreated, resp)
}

func createCustomer(c echo.Context, deps api.Deps, desc resource.Descriptor, draft map[string]string) error {
	in := createService.CustomerInput{
		Email:     draft["email"],
		FirstName: draft["first_name"],
		LastName:  draft["last_name"],
		Phone:     draft["phone"],
		GroupIDs:  splitIDs(draft["groups"]),
	}

	out, err := createService.CreateCustomer(c.Request().Context(), deps.Client, in)
	if err != nil {
		return createError(c, deps, desc, err)
	}

	resp := echo.Map{"id": out.CustomerID, "message": "Customer created"}
	outcome := entity.AuditOutcomeSuccess
	if len(out.GroupWarnings) > 0 {
		outcome = entity.AuditOutcomePartial
		resp["warning"] = "customer created (id " + out.CustomerID + "), but some group assignments failed: " + strings.Join(out.GroupWarnings, "; ")
	}
	api.RecordAudit(deps, desc.Name, "create", out.CustomerID, outcome, asString(resp["warning"]))
	return c.JSON(http.StatusCreated, resp)
}

// createError maps a submit failure onto a response: field errors are 400
// with the offending field, upstream errors mirror the upstream status,
// anything else is a 502 with a generic message.
func createError(c echo.Context, deps api.Deps, desc resource.Descriptor, err error) error {
	api.RecordAudit(deps, desc.Name, "create", "", entity.AuditOutcomeFailed, err.Error())

	var fieldErr *createService.FieldError
	if errors.As(err, &fieldErr) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": fieldErr.Message, "field": fieldErr.Field})
	}

	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		return c.JSON(apiErr.Status, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusBadGateway, echo.Map{"error": "unable to save " + strings.ToLower(desc.Label)})
}

func splitIDs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func asString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
