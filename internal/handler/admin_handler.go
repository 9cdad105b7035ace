package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/icemanhv/forum/internal/service"
)

// AdminHandler exposes the generic table console. All routes behind it
// require an administrator session.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Index godoc
// @Summary List manageable tables
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin [get]
func (h *AdminHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"tables": h.adminService.ListTables(),
	})
}

// Table godoc
// @Summary List a table's fields, rows and foreign-key options
// @Tags admin
// @Produce json
// @Param name path string true "Table name"
// @Success 200 {object} service.TableView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/tables/{name} [get]
func (h *AdminHandler) Table(c echo.Context) error {
	view, err := h.adminService.ListTable(c.Request().Context(), c.Param("name"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}

// CreateRow godoc
// @Summary Create a row in a table from form data
// @Tags admin
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name path string true "Table name"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/tables/{name} [post]
func (h *AdminHandler) CreateRow(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	name := c.Param("name")
	row, err := h.adminService.CreateRow(c.Request().Context(), name, form)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "row created",
		"table":   name,
		"row":     row,
	})
}
