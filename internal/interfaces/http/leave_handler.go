package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dayflow-hr/dayflow-api/internal/application/dto"
	"github.com/dayflow-hr/dayflow-api/internal/application/leave"
	"github.com/dayflow-hr/dayflow-api/internal/domain/repository"
)

// LeaveHandler handles the leave request lifecycle: submit, list, decide.
// It holds the user repository to denormalize the requester's display name
// onto new requests.
type LeaveHandler struct {
	uc    *leave.LeaveUseCase
	users repository.UserRepository
}

// NewLeaveHandler builds the leave handler.
func NewLeaveHandler(uc *leave.LeaveUseCase, users repository.UserRepository) *LeaveHandler {
	return &LeaveHandler{uc: uc, users: users}
}

// Submit godoc
// @Summary      Submit a leave request
// @Tags         leave
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitLeaveRequest  true  "type, dates, reason"
// @Success      201   {object}  dto.LeaveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/leaves [post]
func (h *LeaveHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitLeaveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	userID := GetUserID(c)
	user, err := h.users.GetByID(userID)
	if err != nil {
		return domainError(c, err)
	}
	name := ""
	if user != nil {
		name = user.FullName()
	}
	out, err := h.uc.Submit(userID, name, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListOwn godoc
// @Summary      List the caller's leave requests, oldest first
// @Tags         leave
// @Produce      json
// @Success      200  {array}  dto.LeaveResponse
// @Router       /api/leaves [get]
func (h *LeaveHandler) ListOwn(c *fiber.Ctx) error {
	out, err := h.uc.ListForUser(GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Balance godoc
// @Summary      Per-type leave balances
// @Tags         leave
// @Produce      json
// @Success      200  {object}  dto.LeaveBalanceResponse
// @Router       /api/leaves/balance [get]
func (h *LeaveHandler) Balance(c *fiber.Ctx) error {
	return c.JSON(h.uc.Balance())
}

// ListPending godoc
// @Summary      Approvals queue, newest first (admin)
// @Tags         leave
// @Produce      json
// @Success      200  {array}  dto.LeaveResponse
// @Router       /api/leaves/pending [get]
func (h *LeaveHandler) ListPending(c *fiber.Ctx) error {
	out, err := h.uc.ListPending()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ListDecided godoc
// @Summary      Decided requests, newest first (admin)
// @Tags         leave
// @Produce      json
// @Success      200  {array}  dto.LeaveResponse
// @Router       /api/leaves/decided [get]
func (h *LeaveHandler) ListDecided(c *fiber.Ctx) error {
	out, err := h.uc.ListDecided()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Decide godoc
// @Summary      Approve or reject a pending request (admin)
// @Tags         leave
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "request ID"
// @Param        body  body  dto.DecisionRequest  true  "decision, optional comment"
// @Success      200   {object}  dto.LeaveResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/leaves/{id}/decision [post]
func (h *LeaveHandler) Decide(c *fiber.Ctx) error {
	var in dto.DecisionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Decide(c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
