package models

import "helpdesk/internal/shared/constants"

type TicketModel struct {
	ID           uint   `gorm:"primaryKey"`
	Title        string `gorm:"column:titulo;size:200;not null"`
	Description  string `gorm:"column:descricao;type:text;not null"`
	Status       string `gorm:"size:20;not null;index"`
	Priority     string `gorm:"column:prioridade;size:20;not null;index"`
	CreatorID    uint   `gorm:"column:criador_id;not null;index"`
	TechnicianID *uint  `gorm:"column:tecnico_id;index"`
	Location     string `gorm:"column:localizacao;size:200"`
	Equipment    string `gorm:"column:equipamento;size:100"`
	Attachments  string `gorm:"column:anexos;type:text"`
	CreatedAt    int64  `gorm:"column:data_criacao;not null;index"`
	UpdatedAt    int64  `gorm:"column:data_atualizacao;autoUpdateTime:milli;not null"`
	ResolvedAt   *int64 `gorm:"column:data_resolucao"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type TicketHistoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	TicketID    uint   `gorm:"column:chamado_id;not null;index"`
	ActorID     uint   `gorm:"column:usuario_id;not null;index"`
	Action      string `gorm:"column:acao;size:20;not null"`
	Description string `gorm:"column:descricao;type:text;not null"`
	CreatedAt   int64  `gorm:"column:data_criacao;not null;index"`
}

func (TicketHistoryModel) TableName() string {
	return constants.TableTicketHistory
}
