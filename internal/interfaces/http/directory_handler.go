package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dayflow-hr/dayflow-api/internal/application/directory"
)

// DirectoryHandler handles the employee directory (admin only).
type DirectoryHandler struct {
	uc *directory.DirectoryUseCase
}

// NewDirectoryHandler builds the directory handler.
func NewDirectoryHandler(uc *directory.DirectoryUseCase) *DirectoryHandler {
	return &DirectoryHandler{uc: uc}
}

// List godoc
// @Summary      Employee directory with search and department filter
// @Tags         directory
// @Produce      json
// @Param        search      query  string  false  "matches name or email, case-insensitive"
// @Param        department  query  string  false  "exact department; empty or All disables the filter"
// @Success      200  {array}  dto.EmployeeDTO
// @Router       /api/employees [get]
func (h *DirectoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("search"), c.Query("department"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Directory headcounts
// @Tags         directory
// @Produce      json
// @Success      200  {object}  dto.DirectoryStatsDTO
// @Router       /api/employees/stats [get]
func (h *DirectoryHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Departments godoc
// @Summary      Distinct department names, sorted
// @Tags         directory
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/employees/departments [get]
func (h *DirectoryHandler) Departments(c *fiber.Ctx) error {
	out, err := h.uc.Departments()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
