package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dayflow-hr/dayflow-api/internal/application/attendance"
	"github.com/dayflow-hr/dayflow-api/internal/application/dto"
)

// AttendanceHandler handles daily punches and the month view.
type AttendanceHandler struct {
	uc *attendance.AttendanceUseCase
}

// NewAttendanceHandler builds the attendance handler.
func NewAttendanceHandler(uc *attendance.AttendanceUseCase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

// CheckIn godoc
// @Summary      Record today's check-in
// @Tags         attendance
// @Produce      json
// @Success      200  {object}  dto.CheckResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/attendance/check-in [post]
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	out, err := h.uc.CheckIn(GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// CheckOut godoc
// @Summary      Record today's check-out
// @Tags         attendance
// @Produce      json
// @Success      200  {object}  dto.CheckResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/attendance/check-out [post]
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	out, err := h.uc.CheckOut(GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// MonthSummary godoc
// @Summary      Per-day attendance and counters for one month
// @Tags         attendance
// @Produce      json
// @Param        year   query  int  false  "defaults to the current year"
// @Param        month  query  int  false  "1-12, defaults to the current month"
// @Success      200    {object}  dto.MonthSummaryResponse
// @Router       /api/attendance/summary [get]
func (h *AttendanceHandler) MonthSummary(c *fiber.Ctx) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month must be 1-12"})
	}
	out, err := h.uc.MonthSummary(GetUserID(c), year, time.Month(month))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
