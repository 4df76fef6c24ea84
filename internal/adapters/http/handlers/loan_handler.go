package handlers

import (
	"errors"
	"strconv"

	"coopeasy/internal/adapters/http/middleware"
	"coopeasy/internal/adapters/persistence/models"
	"coopeasy/internal/core/services"
	"coopeasy/internal/pkg/pagination"
	"coopeasy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LoanHandler handles loan application endpoints
type LoanHandler struct {
	loanService *services.LoanService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanService *services.LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// Submit handles a member's loan application
// @Summary Submit loan application
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.LoanApplicationInput true "Loan application data"
// @Success 201 {object} response.Body
// @Failure 400 {object} response.Body
// @Router /loans [post]
func (h *LoanHandler) Submit(c *fiber.Ctx) error {
	var input services.LoanApplicationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.Purpose == "" {
		return response.BadRequest(c, "Loan purpose is required")
	}

	loan, err := h.loanService.Submit(c.Context(), middleware.ActorFromCtx(c), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAmount):
			return response.BadRequest(c, "Loan amount must be greater than zero")
		case errors.Is(err, services.ErrInvalidPeriod):
			return response.BadRequest(c, "Repayment period must be at least one month")
		case errors.Is(err, services.ErrMemberNotActive):
			return response.Forbidden(c, "Your membership is awaiting approval")
		default:
			return response.InternalServerError(c, "Failed to submit loan application")
		}
	}

	return response.Created(c, "Loan application submitted", loan)
}

// Calculator previews an amortization schedule without writing anything
// @Summary Preview loan schedule
// @Tags Loans
// @Produce json
// @Param amount query number true "Principal amount"
// @Param period query int true "Repayment period in months"
// @Param rate query number false "Annual rate override in percent"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Router /loans/calculator [get]
func (h *LoanHandler) Calculator(c *fiber.Ctx) error {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		return response.BadRequest(c, "Invalid amount")
	}
	period, err := strconv.Atoi(c.Query("period"))
	if err != nil {
		return response.BadRequest(c, "Invalid period")
	}

	rate := h.loanService.AnnualRate()
	if q := c.Query("rate"); q != "" {
		rate, err = strconv.ParseFloat(q, 64)
		if err != nil || rate <= 0 {
			return response.BadRequest(c, "Invalid rate")
		}
	}

	schedule, err := h.loanService.CalculateWithRate(amount, rate, period)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAmount):
			return response.BadRequest(c, "Amount must be greater than zero")
		case errors.Is(err, services.ErrInvalidPeriod):
			return response.BadRequest(c, "Period must be at least one month")
		default:
			return response.InternalServerError(c, "Failed to calculate schedule")
		}
	}

	return response.Success(c, "Schedule calculated", fiber.Map{
		"amount":          amount,
		"period":          period,
		"annual_rate":     rate,
		"monthly_payment": schedule.MonthlyPayment,
		"total_interest":  schedule.TotalInterest,
		"total_payment":   schedule.TotalPayment,
	})
}

// ListMine lists the caller's loans
// @Summary List my loans
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Body
// @Router /loans/me [get]
func (h *LoanHandler) ListMine(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	params := pagination.GetParams(c)

	loans, total, err := h.loanService.ListMine(c.Context(), userID, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list loans")
	}

	return response.Success(c, "Loans retrieved", pagination.NewResponse(loans, params, total))
}

// List lists loans for staff, optionally filtered by status
// @Summary List loans
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Body
// @Router /loans [get]
func (h *LoanHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	status := c.Query("status")

	var (
		loans []*models.LoanApplication
		total int64
		err   error
	)
	if status != "" {
		loans, total, err = h.loanService.ListByStatus(c.Context(), status, params.Offset, params.Limit)
	} else {
		loans, total, err = h.loanService.List(c.Context(), params.Offset, params.Limit)
	}
	if err != nil {
		return response.InternalServerError(c, "Failed to list loans")
	}

	return response.Success(c, "Loans retrieved", pagination.NewResponse(loans, params, total))
}

// Get returns one loan
// @Summary Get loan
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Loan ID"
// @Success 200 {object} response.Body
// @Failure 404 {object} response.Body
// @Router /loans/{id} [get]
func (h *LoanHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid loan ID")
	}

	loan, err := h.loanService.GetByID(c.Context(), middleware.ActorFromCtx(c), id)
	if err != nil {
		return workflowError(c, err, "loan")
	}

	return response.Success(c, "Loan retrieved", loan)
}

// Review marks a pending loan as reviewed (accountant)
// @Summary Review loan
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Loan ID"
// @Success 200 {object} response.Body
// @Failure 409 {object} response.Body
// @Router /loans/{id}/review [post]
func (h *LoanHandler) Review(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid loan ID")
	}

	loan, err := h.loanService.Review(c.Context(), middleware.ActorFromCtx(c), id)
	if err != nil {
		return workflowError(c, err, "loan")
	}

	return response.Success(c, "Loan reviewed", loan)
}

// FastApprove approves a pending loan directly (accountant)
// @Summary Fast-approve loan
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Loan ID"
// @Success 200 {object} response.Body
// @Failure 409 {object} response.Body
// @Router /loans/{id}/fast-approve [post]
func (h *LoanHandler) FastApprove(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid loan ID")
	}

	loan, err := h.loanService.FastApprove(c.Context(), middleware.ActorFromCtx(c), id)
	if err != nil {
		return workflowError(c, err, "loan")
	}

	return response.Success(c, "Loan approved", loan)
}

// Approve approves a reviewed loan (president)
// @Summary Approve loan
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Loan ID"
// @Success 200 {object} response.Body
// @Failure 409 {object} response.Body
// @Router /loans/{id}/approve [post]
func (h *LoanHandler) Approve(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid loan ID")
	}

	loan, err := h.loanService.Approve(c.Context(), middleware.ActorFromCtx(c), id)
	if err != nil {
		return workflowError(c, err, "loan")
	}

	return response.Success(c, "Loan approved", loan)
}

// Reject rejects a pending or reviewed loan
// @Summary Reject loan
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Loan ID"
// @Param body body RejectRequest true "Rejection reason"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 409 {object} response.Body
// @Router /loans/{id}/reject [post]
func (h *LoanHandler) Reject(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid loan ID")
	}

	var req RejectRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	loan, err := h.loanService.Reject(c.Context(), middleware.ActorFromCtx(c), id, req.Reason)
	if err != nil {
		return workflowError(c, err, "loan")
	}

	return response.Success(c, "Loan rejected", loan)
}
