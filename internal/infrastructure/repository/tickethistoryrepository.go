package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

// TicketHistoryRepository persists the append-only audit trail. There is
// deliberately no update or delete method.
type TicketHistoryRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketHistoryRepository(db *gorm.DB) *TicketHistoryRepository {
	return &TicketHistoryRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketHistoryRepository) Append(ctx context.Context, entry *ticket.HistoryEntry) error {
	model := r.mapper.HistoryToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}

	if err := entry.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TicketHistoryRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error) {
	var entryModels []models.TicketHistoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("chamado_id = ?", ticketID).
		Order("data_criacao DESC, id DESC").
		Find(&entryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list history entries: %w", err)
	}

	entries := make([]*ticket.HistoryEntry, len(entryModels))
	for i, model := range entryModels {
		e, err := r.mapper.HistoryToDomain(&model)
		if err != nil {
			return nil, err
		}
		entries[i] = e
	}

	return entries, nil
}
