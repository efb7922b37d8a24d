package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dayflow-hr/dayflow-api/internal/application/payroll"
)

// PayrollHandler handles the salary views and the payslip download.
type PayrollHandler struct {
	uc *payroll.PayrollUseCase
}

// NewPayrollHandler builds the payroll handler.
func NewPayrollHandler(uc *payroll.PayrollUseCase) *PayrollHandler {
	return &PayrollHandler{uc: uc}
}

// Current godoc
// @Summary      The caller's latest payroll record
// @Tags         payroll
// @Produce      json
// @Success      200  {object}  dto.PayrollRecordDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payroll/current [get]
func (h *PayrollHandler) Current(c *fiber.Ctx) error {
	out, err := h.uc.Current(GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// History godoc
// @Summary      The caller's payroll history, newest month first
// @Tags         payroll
// @Produce      json
// @Success      200  {array}  dto.PayrollRecordDTO
// @Router       /api/payroll/history [get]
func (h *PayrollHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// YearToDate godoc
// @Summary      The caller's paid totals for the current year
// @Tags         payroll
// @Produce      json
// @Success      200  {object}  dto.YearToDateDTO
// @Router       /api/payroll/ytd [get]
func (h *PayrollHandler) YearToDate(c *fiber.Ctx) error {
	out, err := h.uc.YearToDate(GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// AggregateMonth godoc
// @Summary      Current month's payroll run across all users (admin)
// @Tags         payroll
// @Produce      json
// @Success      200  {object}  dto.AggregatePayrollDTO
// @Router       /api/payroll/aggregate [get]
func (h *PayrollHandler) AggregateMonth(c *fiber.Ctx) error {
	out, err := h.uc.AggregateMonth()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Payslip godoc
// @Summary      Download one record's payslip as PDF
// @Tags         payroll
// @Produce      application/pdf
// @Param        id  path  string  true  "payroll record ID"
// @Success      200  {file}    file
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payroll/{id}/payslip [get]
func (h *PayrollHandler) Payslip(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.Payslip(GetUserID(c), GetRole(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
