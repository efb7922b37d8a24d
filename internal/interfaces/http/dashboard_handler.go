package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dayflow-hr/dayflow-api/internal/application/dashboard"
	"github.com/dayflow-hr/dayflow-api/internal/application/dto"
	"github.com/dayflow-hr/dayflow-api/internal/domain/repository"
)

// DashboardHandler serves the role-split home view.
type DashboardHandler struct {
	uc    *dashboard.DashboardUseCase
	users repository.UserRepository
}

// NewDashboardHandler builds the dashboard handler.
func NewDashboardHandler(uc *dashboard.DashboardUseCase, users repository.UserRepository) *DashboardHandler {
	return &DashboardHandler{uc: uc, users: users}
}

// Summary godoc
// @Summary      Home view numbers for the caller's role
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	user, err := h.users.GetByID(GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "user not found"})
	}
	out, err := h.uc.Summary(user)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
