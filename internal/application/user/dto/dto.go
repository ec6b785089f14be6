package dto

import (
	"time"

	ticketdto "helpdesk/internal/application/ticket/dto"
)

// UserDTO is the account projection returned by the user usecases.
type UserDTO struct {
	ID           uint       `json:"id"`
	Name         string     `json:"nome"`
	Email        string     `json:"email"`
	Role         string     `json:"papel"`
	Capabilities []string   `json:"capabilities"`
	Active       bool       `json:"ativo"`
	RegisteredAt time.Time  `json:"data_cadastro"`
	LastAccessAt *time.Time `json:"ultimo_acesso,omitempty"`
	DeletedAt    *time.Time `json:"data_exclusao,omitempty"`
	DeletedBy    *uint      `json:"excluido_por,omitempty"`
}

// ProfileDTO is the profile page payload: the account plus its ticket
// statistics and most recent tickets.
type ProfileDTO struct {
	User       UserDTO               `json:"usuario"`
	Total      int64                 `json:"total_chamados"`
	Open       int64                 `json:"chamados_abertos"`
	InProgress int64                 `json:"chamados_andamento"`
	Resolved   int64                 `json:"chamados_resolvidos"`
	Recent     []ticketdto.TicketDTO `json:"ultimos_chamados"`
}
