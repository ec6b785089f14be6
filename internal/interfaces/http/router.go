package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	ticketusecases "helpdesk/internal/application/ticket/usecases"
	userusecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/email"
	"helpdesk/internal/infrastructure/repository"
	authhandlers "helpdesk/internal/interfaces/http/handlers/auth"
	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	userhandlers "helpdesk/internal/interfaces/http/handlers/user"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
)

// Router wires repositories, usecases, handlers and routes together.
type Router struct {
	engine *gin.Engine
}

// NewRouter creates the HTTP router with all dependencies.
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.ErrorHandler())

	// Infrastructure
	userRepo := repository.NewUserRepository(database)
	ticketRepo := repository.NewTicketRepository(database)
	historyRepo := repository.NewTicketHistoryRepository(database)
	txManager := db.NewTransactionManager(database)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.SessionExpHours)

	notifier := email.NewSMTPNotifier(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		OpsMailbox:  cfg.Email.OpsMailbox,
	}, log)

	// User usecases
	registerUC := userusecases.NewRegisterUserUseCase(userRepo, hasher, notifier, log)
	authenticateUC := userusecases.NewAuthenticateUserUseCase(userRepo, hasher, log)
	checkEmailUC := userusecases.NewCheckEmailAvailabilityUseCase(userRepo, log)
	getProfileUC := userusecases.NewGetProfileUseCase(userRepo, ticketRepo, log)
	updateProfileUC := userusecases.NewUpdateProfileUseCase(userRepo, log)
	changePasswordUC := userusecases.NewChangePasswordUseCase(userRepo, hasher, log)
	createUserUC := userusecases.NewCreateUserUseCase(userRepo, hasher, log)
	listUsersUC := userusecases.NewListUsersUseCase(userRepo, log)
	toggleActiveUC := userusecases.NewToggleUserActiveUseCase(userRepo, log)
	softDeleteUC := userusecases.NewSoftDeleteUserUseCase(userRepo, ticketRepo, historyRepo, txManager, log)
	restoreUC := userusecases.NewRestoreUserUseCase(userRepo, log)
	permanentDeleteUC := userusecases.NewPermanentlyDeleteUserUseCase(userRepo, ticketRepo, log)

	// Ticket usecases
	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, historyRepo, userRepo, txManager, notifier, log)
	applyUpdateUC := ticketusecases.NewApplyTicketUpdateUseCase(ticketRepo, historyRepo, userRepo, txManager, notifier, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, historyRepo, userRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, userRepo, log)
	dashboardUC := ticketusecases.NewGetDashboardUseCase(ticketRepo, userRepo, log)
	listAPIUC := ticketusecases.NewListTicketsAPIUseCase(ticketRepo, userRepo, log)

	// Handlers
	authHandler := authhandlers.NewAuthHandler(registerUC, authenticateUC, checkEmailUC, jwtService, cfg.Auth.Cookie)
	ticketHandler := tickethandlers.NewTicketHandler(createTicketUC, applyUpdateUC, getTicketUC, listTicketsUC, dashboardUC, listAPIUC)
	userHandler := userhandlers.NewUserHandler(
		getProfileUC,
		updateProfileUC,
		changePasswordUC,
		createUserUC,
		listUsersUC,
		toggleActiveUC,
		softDeleteUC,
		restoreUC,
		permanentDeleteUC,
	)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{
		UserHandler:    userHandler,
		AuthMiddleware: authMiddleware,
	})

	return &Router{engine: engine}
}

// Engine returns the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
