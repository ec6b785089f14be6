package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	applyUpdateUC  usecases.ApplyTicketUpdateExecutor
	getTicketUC    usecases.GetTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	dashboardUC    usecases.GetDashboardExecutor
	listAPIUC      usecases.ListTicketsAPIExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	applyUpdateUC usecases.ApplyTicketUpdateExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	dashboardUC usecases.GetDashboardExecutor,
	listAPIUC usecases.ListTicketsAPIExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		applyUpdateUC:  applyUpdateUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		dashboardUC:    dashboardUC,
		listAPIUC:      listAPIUC,
		logger:         logger.NewLogger(),
	}
}

// CreateTicket handles POST /chamados
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := req.ToCommand(middleware.UserIDFromContext(c))

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Chamado criado com sucesso")
}

// ListTickets handles GET /chamados
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.ListTicketsQuery{
		UserID:       middleware.UserIDFromContext(c),
		Capabilities: middleware.CapabilitiesFromContext(c),
		Status:       req.Status,
		Priority:     req.Priority,
		Page:         req.Page,
		PageSize:     req.PageSize,
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, req.Page, req.PageSize)
}

// GetTicket handles GET /chamados/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetTicketQuery{
		TicketID:     ticketID,
		UserID:       middleware.UserIDFromContext(c),
		Capabilities: middleware.CapabilitiesFromContext(c),
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTicket handles POST /chamados/:id/atualizar
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ApplyTicketUpdateCommand{
		TicketID:          ticketID,
		ActorID:           middleware.UserIDFromContext(c),
		ActorCapabilities: middleware.CapabilitiesFromContext(c),
		Status:            req.Status,
		Priority:          req.Priority,
		TechnicianID:      req.TechnicianID,
		Comment:           req.Comment,
	}

	result, err := h.applyUpdateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Chamado atualizado com sucesso", result)
}

// Dashboard handles GET /dashboard
func (h *TicketHandler) Dashboard(c *gin.Context) {
	query := usecases.GetDashboardQuery{
		UserID:       middleware.UserIDFromContext(c),
		Capabilities: middleware.CapabilitiesFromContext(c),
	}

	result, err := h.dashboardUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTicketsAPI handles GET /api/chamados
func (h *TicketHandler) ListTicketsAPI(c *gin.Context) {
	query := usecases.ListTicketsAPIQuery{
		UserID:       middleware.UserIDFromContext(c),
		Capabilities: middleware.CapabilitiesFromContext(c),
	}

	result, err := h.listAPIUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
