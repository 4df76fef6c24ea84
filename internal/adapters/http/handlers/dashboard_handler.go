package handlers

import (
	"time"

	"coopeasy/internal/core/domain"
	"coopeasy/internal/core/services"
	"coopeasy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles role-based dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get returns the dashboard for the caller's role
// @Summary Get dashboard
// @Description Returns the member, accountant or president dashboard depending on the caller's role
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Body
// @Failure 401 {object} response.Body
// @Router /dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)
	userID, _ := c.Locals("userID").(uint)

	switch role {
	case string(domain.RoleMember):
		data, err := h.dashboardService.GetMemberDashboard(c.Context(), userID)
		if err != nil {
			return response.InternalServerError(c, "Failed to load dashboard")
		}
		return response.Success(c, "Dashboard retrieved", data)

	case string(domain.RoleAccountant):
		data, err := h.dashboardService.GetAccountantDashboard(c.Context())
		if err != nil {
			return response.InternalServerError(c, "Failed to load dashboard")
		}
		return response.Success(c, "Dashboard retrieved", data)

	case string(domain.RolePresident):
		data, err := h.dashboardService.GetPresidentDashboard(c.Context())
		if err != nil {
			return response.InternalServerError(c, "Failed to load dashboard")
		}
		return response.Success(c, "Dashboard retrieved", data)

	default:
		return response.Unauthorized(c, "Unauthorized")
	}
}

// Member returns the member dashboard explicitly
// @Summary Member dashboard
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Body
// @Router /dashboard/member [get]
func (h *DashboardHandler) Member(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	data, err := h.dashboardService.GetMemberDashboard(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to load dashboard")
	}
	return response.Success(c, "Dashboard retrieved", data)
}

// Accountant returns the accountant dashboard explicitly
// @Summary Accountant dashboard
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Body
// @Router /dashboard/accountant [get]
func (h *DashboardHandler) Accountant(c *fiber.Ctx) error {
	data, err := h.dashboardService.GetAccountantDashboard(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load dashboard")
	}
	return response.Success(c, "Dashboard retrieved", data)
}

// President returns the president dashboard explicitly
// @Summary President dashboard
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Body
// @Router /dashboard/president [get]
func (h *DashboardHandler) President(c *fiber.Ctx) error {
	data, err := h.dashboardService.GetPresidentDashboard(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load dashboard")
	}
	return response.Success(c, "Dashboard retrieved", data)
}

// MonthlyReport returns the activity report for one calendar month
// @Summary Monthly report
// @Description Aggregated deposits, loans and member growth for a month (president)
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param month query string false "Month in YYYY-MM format, defaults to the current month"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Router /dashboard/reports/monthly [get]
func (h *DashboardHandler) MonthlyReport(c *fiber.Ctx) error {
	at := time.Now()
	if month := c.Query("month"); month != "" {
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			return response.BadRequest(c, "Month must be in YYYY-MM format")
		}
		at = parsed
	}

	report, err := h.dashboardService.GetMonthlyReport(c.Context(), at)
	if err != nil {
		return response.InternalServerError(c, "Failed to build report")
	}

	return response.Success(c, "Report retrieved", report)
}
