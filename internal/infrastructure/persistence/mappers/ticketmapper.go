package mappers

import (
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// HistoryToModel converts a history entry to a persistence model.
	HistoryToModel(h *ticket.HistoryEntry) *models.TicketHistoryModel

	// HistoryToDomain converts a history persistence model to a domain entity.
	HistoryToDomain(model *models.TicketHistoryModel) (*ticket.HistoryEntry, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:           t.ID(),
		Title:        t.Title(),
		Description:  t.Description(),
		Status:       t.Status().String(),
		Priority:     t.Priority().String(),
		CreatorID:    t.CreatorID(),
		TechnicianID: t.TechnicianID(),
		Location:     t.Location(),
		Equipment:    t.Equipment(),
		Attachments:  t.Attachments(),
		CreatedAt:    t.CreatedAt().UnixMilli(),
		UpdatedAt:    t.UpdatedAt().UnixMilli(),
	}

	if resolved := t.ResolvedAt(); resolved != nil {
		resolvedMillis := resolved.UnixMilli()
		model.ResolvedAt = &resolvedMillis
	}

	return model
}

// ToDomain converts a ticket persistence model to a domain entity.
// History entries are loaded separately by the repository.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, err
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, err
	}

	var resolvedAt *time.Time
	if model.ResolvedAt != nil {
		t := time.UnixMilli(*model.ResolvedAt)
		resolvedAt = &t
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		status,
		priority,
		model.CreatorID,
		model.TechnicianID,
		model.Location,
		model.Equipment,
		model.Attachments,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
		resolvedAt,
	)
}

// HistoryToModel converts a history entry to a persistence model.
func (m *TicketMapperImpl) HistoryToModel(h *ticket.HistoryEntry) *models.TicketHistoryModel {
	return &models.TicketHistoryModel{
		ID:          h.ID(),
		TicketID:    h.TicketID(),
		ActorID:     h.ActorID(),
		Action:      h.Action().String(),
		Description: h.Description(),
		CreatedAt:   h.CreatedAt().UnixMilli(),
	}
}

// HistoryToDomain converts a history persistence model to a domain entity.
func (m *TicketMapperImpl) HistoryToDomain(model *models.TicketHistoryModel) (*ticket.HistoryEntry, error) {
	return ticket.ReconstructHistoryEntry(
		model.ID,
		model.TicketID,
		model.ActorID,
		ticket.Action(model.Action),
		model.Description,
		time.UnixMilli(model.CreatedAt),
	)
}
