package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/domain/user"
	userhandlers "helpdesk/internal/interfaces/http/handlers/user"
	"helpdesk/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for profile and administration routes.
type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes configures the profile routes and the user administration
// routes, the latter gated on the manage_users capability.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	requireAuth := cfg.AuthMiddleware.RequireAuth()

	profile := engine.Group("/perfil")
	profile.Use(requireAuth)
	{
		profile.GET("", cfg.UserHandler.GetProfile)
		profile.POST("/atualizar", cfg.UserHandler.UpdateProfile)
		profile.POST("/alterar-senha", cfg.UserHandler.ChangePassword)
	}

	users := engine.Group("/usuarios")
	users.Use(requireAuth, cfg.AuthMiddleware.RequireCapability(user.CapManageUsers))
	{
		users.GET("", cfg.UserHandler.ListUsers)
		users.POST("", cfg.UserHandler.CreateUser)
		users.GET("/excluidos", cfg.UserHandler.ListDeletedUsers)

		users.POST("/:id/toggle", cfg.UserHandler.ToggleActive)
		users.POST("/:id/excluir", cfg.UserHandler.SoftDelete)
		users.POST("/:id/restaurar", cfg.UserHandler.Restore)
		users.POST("/:id/excluir-permanente", cfg.UserHandler.PermanentDelete)
	}
}
