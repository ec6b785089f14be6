package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/utils"
)

type CreateTicketRequest struct {
	Title       string `json:"titulo" binding:"required"`
	Description string `json:"descricao" binding:"required"`
	Priority    string `json:"prioridade"`
	Location    string `json:"localizacao"`
	Equipment   string `json:"equipamento"`
}

func (r *CreateTicketRequest) ToCommand(creatorID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Location:    r.Location,
		Equipment:   r.Equipment,
		CreatorID:   creatorID,
	}
}

// UpdateTicketRequest carries the triage form. Pointer fields distinguish
// "not sent" from an explicit value; an empty technician string means
// unassign.
type UpdateTicketRequest struct {
	Status       *string `json:"status"`
	Priority     *string `json:"prioridade"`
	TechnicianID *string `json:"tecnico_id"`
	Comment      string  `json:"comentario"`
}

type ListTicketsRequest struct {
	Status   string
	Priority string
	Page     int
	PageSize int
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	pagination := utils.ParsePagination(c)

	return &ListTicketsRequest{
		Status:   c.DefaultQuery("status", constants.FilterAll),
		Priority: c.DefaultQuery("prioridade", constants.FilterAll),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}

func parseTicketID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid ticket ID")
	}
	return uint(id), nil
}
