package dto

import "time"

// DateTimeLayout is the display format used across listings and emails.
const DateTimeLayout = "02/01/2006 15:04"

// TicketDTO is the standard ticket projection for listings and detail views.
type TicketDTO struct {
	ID             uint       `json:"id"`
	Title          string     `json:"titulo"`
	Description    string     `json:"descricao"`
	Status         string     `json:"status"`
	Priority       string     `json:"prioridade"`
	CreatorID      uint       `json:"criador_id"`
	CreatorName    string     `json:"criador"`
	TechnicianID   *uint      `json:"tecnico_id,omitempty"`
	TechnicianName *string    `json:"tecnico"`
	Location       string     `json:"localizacao,omitempty"`
	Equipment      string     `json:"equipamento,omitempty"`
	CreatedAt      time.Time  `json:"data_criacao"`
	UpdatedAt      time.Time  `json:"data_atualizacao"`
	ResolvedAt     *time.Time `json:"data_resolucao,omitempty"`
}

// TicketAPIDTO matches the /api/chamados record shape: formatted creation
// date, names resolved, technician null when unassigned.
type TicketAPIDTO struct {
	ID             uint    `json:"id"`
	Title          string  `json:"titulo"`
	Description    string  `json:"descricao"`
	Status         string  `json:"status"`
	Priority       string  `json:"prioridade"`
	CreatedAt      string  `json:"data_criacao"`
	CreatorName    string  `json:"criador"`
	TechnicianName *string `json:"tecnico"`
	Location       string  `json:"localizacao"`
	Equipment      string  `json:"equipamento"`
}

// HistoryEntryDTO is one audit record in a ticket's trail.
type HistoryEntryDTO struct {
	ID          uint      `json:"id"`
	ActorID     uint      `json:"usuario_id"`
	ActorName   string    `json:"usuario"`
	Action      string    `json:"acao"`
	Description string    `json:"descricao"`
	CreatedAt   time.Time `json:"data_acao"`
}

// TechnicianDTO lists an assignable technician for the triage view.
type TechnicianDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
}

// TicketDetailDTO is the detail view: ticket, trail most-recent-first and,
// for triagers, the active technicians available for assignment.
type TicketDetailDTO struct {
	Ticket      TicketDTO         `json:"chamado"`
	History     []HistoryEntryDTO `json:"historico"`
	Technicians []TechnicianDTO   `json:"tecnicos,omitempty"`
}

// DashboardDTO aggregates the landing-page counters and recent tickets.
type DashboardDTO struct {
	Total      int64       `json:"total_chamados"`
	Open       int64       `json:"chamados_abertos"`
	InProgress int64       `json:"chamados_andamento"`
	Resolved   int64       `json:"chamados_resolvidos"`
	Mine       int64       `json:"meus_chamados"`
	Recent     []TicketDTO `json:"ultimos_chamados"`
}
