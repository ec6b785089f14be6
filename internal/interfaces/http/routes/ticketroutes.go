package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/domain/user"
	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
)

// TicketRouteConfig holds dependencies for ticket routes.
type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupTicketRoutes configures ticket, dashboard and JSON API routes.
func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	requireAuth := cfg.AuthMiddleware.RequireAuth()

	engine.GET("/dashboard", requireAuth, cfg.TicketHandler.Dashboard)
	engine.GET("/api/chamados", requireAuth, cfg.TicketHandler.ListTicketsAPI)

	tickets := engine.Group("/chamados")
	tickets.Use(requireAuth)
	{
		tickets.POST("", cfg.TicketHandler.CreateTicket)
		tickets.GET("", cfg.TicketHandler.ListTickets)

		// Specific action endpoints before generic parameterized routes
		tickets.POST("/:id/atualizar",
			cfg.AuthMiddleware.RequireCapability(user.CapTriageTickets),
			cfg.TicketHandler.UpdateTicket)

		tickets.GET("/:id", cfg.TicketHandler.GetTicket)
	}
}
