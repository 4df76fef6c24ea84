package handlers

import (
	"errors"

	"coopeasy/internal/adapters/http/middleware"
	"coopeasy/internal/adapters/persistence/models"
	"coopeasy/internal/core/services"
	"coopeasy/internal/pkg/pagination"
	"coopeasy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SavingsHandler handles savings deposit endpoints
type SavingsHandler struct {
	savingsService *services.SavingsService
}

// NewSavingsHandler creates a new savings handler
func NewSavingsHandler(savingsService *services.SavingsService) *SavingsHandler {
	return &SavingsHandler{savingsService: savingsService}
}

// Request handles a member's deposit request
// @Summary Request savings deposit
// @Tags Savings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.DepositInput true "Deposit data"
// @Success 201 {object} response.Body
// @Failure 400 {object} response.Body
// @Router /savings [post]
func (h *SavingsHandler) Request(c *fiber.Ctx) error {
	var input services.DepositInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	dep, err := h.savingsService.Request(c.Context(), middleware.ActorFromCtx(c), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAmount):
			return response.BadRequest(c, "Deposit amount must be greater than zero")
		case errors.Is(err, services.ErrInvalidMethod):
			return response.BadRequest(c, "Unknown deposit method")
		case errors.Is(err, services.ErrMemberNotActive):
			return response.Forbidden(c, "Your membership is awaiting approval")
		default:
			return response.InternalServerError(c, "Failed to request deposit")
		}
	}

	return response.Created(c, "Deposit requested", dep)
}

// Record handles an accountant's direct deposit entry
// @Summary Record walk-in deposit
// @Tags Savings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.RecordInput true "Deposit data"
// @Success 201 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 404 {object} response.Body
// @Router /savings/record [post]
func (h *SavingsHandler) Record(c *fiber.Ctx) error {
	var input services.RecordInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	dep, err := h.savingsService.Record(c.Context(), middleware.ActorFromCtx(c), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAmount):
			return response.BadRequest(c, "Deposit amount must be greater than zero")
		case errors.Is(err, services.ErrInvalidMethod):
			return response.BadRequest(c, "Unknown deposit method")
		case errors.Is(err, services.ErrUserNotFound):
			return response.NotFound(c, "Member not found")
		case errors.Is(err, services.ErrMemberNotActive):
			return response.BadRequest(c, "The member's account is not active")
		default:
			return response.InternalServerError(c, "Failed to record deposit")
		}
	}

	return response.Created(c, "Deposit recorded", dep)
}

// ListMine lists the caller's deposits
// @Summary List my deposits
// @Tags Savings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Body
// @Router /savings/me [get]
func (h *SavingsHandler) ListMine(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	params := pagination.GetParams(c)

	deps, total, err := h.savingsService.ListMine(c.Context(), userID, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list deposits")
	}

	return response.Success(c, "Deposits retrieved", pagination.NewResponse(deps, params, total))
}

// List lists deposits for staff, optionally filtered by status
// @Summary List deposits
// @Tags Savings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Body
// @Router /savings [get]
func (h *SavingsHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	status := c.Query("status")

	var (
		deps  []*models.SavingsDeposit
		total int64
		err   error
	)
	if status != "" {
		deps, total, err = h.savingsService.ListByStatus(c.Context(), status, params.Offset, params.Limit)
	} else {
		deps, total, err = h.savingsService.List(c.Context(), params.Offset, params.Limit)
	}
	if err != nil {
		return response.InternalServerError(c, "Failed to list deposits")
	}

	return response.Success(c, "Deposits retrieved", pagination.NewResponse(deps, params, total))
}

// Get returns one deposit
// @Summary Get deposit
// @Tags Savings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Deposit ID"
// @Success 200 {object} response.Body
// @Failure 404 {object} response.Body
// @Router /savings/{id} [get]
func (h *SavingsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid deposit ID")
	}

	dep, err := h.savingsService.GetByID(c.Context(), middleware.ActorFromCtx(c), id)
	if err != nil {
		return workflowError(c, err, "deposit")
	}

	return response.Success(c, "Deposit retrieved", dep)
}

// Complete confirms a pending deposit as received
// @Summary Complete deposit
// @Tags Savings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Deposit ID"
// @Success 200 {object} response.Body
// @Failure 409 {object} response.Body
// @Router /savings/{id}/complete [post]
func (h *SavingsHandler) Complete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid deposit ID")
	}

	dep, err := h.savingsService.Complete(c.Context(), middleware.ActorFromCtx(c), id)
	if err != nil {
		return workflowError(c, err, "deposit")
	}

	return response.Success(c, "Deposit completed", dep)
}

// Reject declines a pending deposit
// @Summary Reject deposit
// @Tags Savings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Deposit ID"
// @Param body body RejectRequest false "Rejection reason"
// @Success 200 {object} response.Body
// @Failure 409 {object} response.Body
// @Router /savings/{id}/reject [post]
func (h *SavingsHandler) Reject(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid deposit ID")
	}

	var req RejectRequest
	_ = c.BodyParser(&req) // reason is optional for deposits

	dep, err := h.savingsService.Reject(c.Context(), middleware.ActorFromCtx(c), id, req.Reason)
	if err != nil {
		return workflowError(c, err, "deposit")
	}

	return response.Success(c, "Deposit rejected", dep)
}
