package handlers

import (
	"errors"
	"strconv"

	"coopeasy/internal/adapters/http/middleware"
	"coopeasy/internal/core/domain"
	"coopeasy/internal/core/services"
	"coopeasy/internal/pkg/pagination"
	"coopeasy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AccountHandler handles account application endpoints
type AccountHandler struct {
	accountService *services.AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *services.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// RejectRequest carries a rejection reason
type RejectRequest struct {
	Reason string `json:"reason"`
}

// Submit handles a member's account application
// @Summary Submit account application
// @Tags Accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.AccountApplicationInput true "Application data"
// @Success 201 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 409 {object} response.Body
// @Router /accounts [post]
func (h *AccountHandler) Submit(c *fiber.Ctx) error {
	var input services.AccountApplicationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	app, err := h.accountService.Submit(c.Context(), middleware.ActorFromCtx(c), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAmount):
			return response.BadRequest(c, "Initial deposit must be greater than zero")
		case errors.Is(err, services.ErrOpenApplicationExists):
			return response.Conflict(c, "You already have an open account application")
		default:
			return response.InternalServerError(c, "Failed to submit application")
		}
	}

	return response.Created(c, "Account application submitted", app)
}

// ListMine lists the caller's applications
// @Summary List my account applications
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Body
// @Router /accounts/me [get]
func (h *AccountHandler) ListMine(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	apps, err := h.accountService.ListMine(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list applications")
	}

	return response.Success(c, "Applications retrieved", apps)
}

// ListPending lists pending applications for the president queue
// @Summary List pending account applications
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Body
// @Router /accounts/pending [get]
func (h *AccountHandler) ListPending(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	apps, total, err := h.accountService.ListByStatus(c.Context(), domain.AccountPending, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list applications")
	}

	return response.Success(c, "Applications retrieved", pagination.NewResponse(apps, params, total))
}

// Get returns one application
// @Summary Get account application
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} response.Body
// @Failure 404 {object} response.Body
// @Router /accounts/{id} [get]
func (h *AccountHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid application ID")
	}

	app, err := h.accountService.GetByID(c.Context(), middleware.ActorFromCtx(c), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrApplicationNotFound):
			return response.NotFound(c, "Application not found")
		case errors.Is(err, services.ErrNotOwner):
			return response.Forbidden(c, "You don't have permission to access this resource")
		default:
			return response.InternalServerError(c, "Failed to get application")
		}
	}

	return response.Success(c, "Application retrieved", app)
}

// Approve approves a pending application and activates the member
// @Summary Approve account application
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} response.Body
// @Failure 404 {object} response.Body
// @Failure 409 {object} response.Body
// @Router /accounts/{id}/approve [post]
func (h *AccountHandler) Approve(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid application ID")
	}

	app, err := h.accountService.Approve(c.Context(), middleware.ActorFromCtx(c), id)
	if err != nil {
		return workflowError(c, err, "application")
	}

	return response.Success(c, "Application approved, member activated", app)
}

// Reject rejects a pending application
// @Summary Reject account application
// @Tags Accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param body body RejectRequest true "Rejection reason"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 409 {object} response.Body
// @Router /accounts/{id}/reject [post]
func (h *AccountHandler) Reject(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid application ID")
	}

	var req RejectRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	app, err := h.accountService.Reject(c.Context(), middleware.ActorFromCtx(c), id, req.Reason)
	if err != nil {
		return workflowError(c, err, "application")
	}

	return response.Success(c, "Application rejected", app)
}

// parseID reads the :id route parameter.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// workflowError maps the shared workflow error set onto HTTP statuses.
func workflowError(c *fiber.Ctx, err error, kind string) error {
	switch {
	case errors.Is(err, services.ErrApplicationNotFound),
		errors.Is(err, services.ErrLoanNotFound),
		errors.Is(err, services.ErrDepositNotFound):
		return response.NotFound(c, "The "+kind+" was not found")
	case errors.Is(err, services.ErrReasonRequired):
		return response.BadRequest(c, "A rejection reason is required")
	case errors.Is(err, domain.ErrAlreadyProcessed):
		return response.Conflict(c, "The "+kind+" has already been processed")
	case errors.Is(err, domain.ErrInvalidTransition):
		return response.Conflict(c, "The "+kind+" is not in a state that allows this action")
	case errors.Is(err, services.ErrNotOwner):
		return response.Forbidden(c, "You don't have permission to access this resource")
	default:
		return response.InternalServerError(c, "Failed to update the "+kind)
	}
}
