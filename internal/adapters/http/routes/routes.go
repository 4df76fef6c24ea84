package routes

import (
	"time"

	"coopeasy/internal/adapters/http/handlers"
	"coopeasy/internal/adapters/http/middleware"
	"coopeasy/internal/adapters/persistence/repositories"
	"coopeasy/internal/config"
	"coopeasy/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application. The stream hub is created
// in main so the reminder scheduler can publish into it too.
func Setup(app *fiber.App, db *gorm.DB, streamService *services.StreamService, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	loanRepo := repositories.NewLoanRepository(db)
	savingsRepo := repositories.NewSavingsRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userService := services.NewUserService(userRepo)
	accountService := services.NewAccountService(accountRepo, userRepo, uow, streamService)
	loanService := services.NewLoanService(loanRepo, userRepo, streamService, cfg.Loan.AnnualRate)
	savingsService := services.NewSavingsService(savingsRepo, userRepo, streamService)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	accountHandler := handlers.NewAccountHandler(accountService)
	loanHandler := handlers.NewLoanHandler(loanService)
	savingsHandler := handlers.NewSavingsHandler(savingsService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	streamHandler := handlers.NewStreamHandler(streamService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Public loan calculator, no account needed to preview a schedule
	apiV1.Get("/loans/calculator", middleware.CacheControl(5*time.Minute), loanHandler.Calculator)

	authRoutes := apiV1.Group("/auth", middleware.NoCacheHeaders())
	setupAuthRoutes(authRoutes, authHandler, cfg)

	auth := middleware.AuthMiddleware(cfg)

	userRoutes := apiV1.Group("/users", auth)
	setupUserRoutes(userRoutes, userHandler)

	accountRoutes := apiV1.Group("/accounts", auth)
	setupAccountRoutes(accountRoutes, accountHandler)

	loanRoutes := apiV1.Group("/loans", auth)
	setupLoanRoutes(loanRoutes, loanHandler)

	savingsRoutes := apiV1.Group("/savings", auth)
	setupSavingsRoutes(savingsRoutes, savingsHandler)

	dashboardRoutes := apiV1.Group("/dashboard", auth)
	setupDashboardRoutes(dashboardRoutes, dashboardHandler)

	apiV1.Get("/events/stream", auth, middleware.Guard(middleware.AnyAuthenticated), streamHandler.Events)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes, rate limited against credential stuffing
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", middleware.AuthRateLimiter(), handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupUserRoutes configures profile and member directory routes
func setupUserRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Get("/me", middleware.Guard(middleware.AnyAuthenticated), handler.GetProfile)
	router.Put("/me", middleware.Guard(middleware.AnyAuthenticated), handler.UpdateProfile)
	router.Get("/members", middleware.Guard(middleware.StaffOnly), handler.ListMembers)
}

// setupAccountRoutes configures account application routes
func setupAccountRoutes(router fiber.Router, handler *handlers.AccountHandler) {
	// A pending member applies for the account that will activate them
	router.Post("/", middleware.Guard(middleware.MemberAny), handler.Submit)
	router.Get("/me", middleware.Guard(middleware.MemberAny), handler.ListMine)

	// Approval queue belongs to the president
	router.Get("/pending", middleware.Guard(middleware.PresidentOnly), handler.ListPending)
	router.Get("/:id", middleware.Guard(middleware.AnyAuthenticated), handler.Get)
	router.Post("/:id/approve", middleware.Guard(middleware.PresidentOnly), handler.Approve)
	router.Post("/:id/reject", middleware.Guard(middleware.PresidentOnly), handler.Reject)
}

// setupLoanRoutes configures loan application routes
func setupLoanRoutes(router fiber.Router, handler *handlers.LoanHandler) {
	router.Post("/", middleware.Guard(middleware.ActiveMember), handler.Submit)
	router.Get("/me", middleware.Guard(middleware.MemberAny), handler.ListMine)
	router.Get("/", middleware.Guard(middleware.StaffOnly), handler.List)
	router.Get("/:id", middleware.Guard(middleware.AnyAuthenticated), handler.Get)

	// Accountant reviews or fast-approves straight from pending
	router.Post("/:id/review", middleware.Guard(middleware.AccountantOnly), handler.Review)
	router.Post("/:id/fast-approve", middleware.Guard(middleware.AccountantOnly), handler.FastApprove)

	// President approves reviewed loans. Reject is open to both staff roles
	// at the route level; the service pairs the role with the loan's state
	// (accountant rejects pending, president rejects reviewed).
	router.Post("/:id/approve", middleware.Guard(middleware.PresidentOnly), handler.Approve)
	router.Post("/:id/reject", middleware.Guard(middleware.StaffOnly), handler.Reject)
}

// setupSavingsRoutes configures savings deposit routes
func setupSavingsRoutes(router fiber.Router, handler *handlers.SavingsHandler) {
	router.Post("/", middleware.Guard(middleware.ActiveMember), handler.Request)
	router.Post("/record", middleware.Guard(middleware.AccountantOnly), handler.Record)
	router.Get("/me", middleware.Guard(middleware.MemberAny), handler.ListMine)
	router.Get("/", middleware.Guard(middleware.StaffOnly), handler.List)
	router.Get("/:id", middleware.Guard(middleware.AnyAuthenticated), handler.Get)
	router.Post("/:id/complete", middleware.Guard(middleware.AccountantOnly), handler.Complete)
	router.Post("/:id/reject", middleware.Guard(middleware.AccountantOnly), handler.Reject)
}

// setupDashboardRoutes configures dashboard routes
func setupDashboardRoutes(router fiber.Router, handler *handlers.DashboardHandler) {
	// Auto-detect by role, plus explicit per-role paths
	router.Get("/", middleware.Guard(middleware.AnyAuthenticated), handler.Get)
	router.Get("/member", middleware.Guard(middleware.MemberAny), handler.Member)
	router.Get("/accountant", middleware.Guard(middleware.AccountantOnly), handler.Accountant)
	router.Get("/president", middleware.Guard(middleware.PresidentOnly), handler.President)
	router.Get("/reports/monthly", middleware.Guard(middleware.PresidentOnly), handler.MonthlyReport)
}
