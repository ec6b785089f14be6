package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

// Update writes the full row. Save rather than Updates so that an unassigned
// technician lands as NULL instead of being skipped as a zero value.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update ticket: %w", err)
	}

	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("chamado não encontrado")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("prioridade = ?", filter.Priority.String())
	}
	if filter.CreatorID != nil {
		query = query.Where("criador_id = ?", *filter.CreatorID)
	}
	if filter.TechnicianID != nil {
		query = query.Where("tecnico_id = ?", *filter.TechnicianID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	query = query.Order("data_criacao DESC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets, err := r.toDomainSlice(ticketModels)
	if err != nil {
		return nil, 0, err
	}

	return tickets, total, nil
}

func (r *TicketRepository) ListRecent(ctx context.Context, creatorID *uint, limit int) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if creatorID != nil {
		query = query.Where("criador_id = ?", *creatorID)
	}

	var ticketModels []models.TicketModel
	if err := query.
		Order("data_criacao DESC").
		Limit(limit).
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent tickets: %w", err)
	}

	return r.toDomainSlice(ticketModels)
}

func (r *TicketRepository) ListAssignedActive(ctx context.Context, technicianID uint) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("tecnico_id = ? AND status IN ?", technicianID,
			[]string{vo.StatusOpen.String(), vo.StatusInProgress.String()}).
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list assigned tickets: %w", err)
	}

	return r.toDomainSlice(ticketModels)
}

func (r *TicketRepository) CountByUser(ctx context.Context, userID uint) (int64, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var created int64
	if err := tx.
		Model(&models.TicketModel{}).
		Where("criador_id = ?", userID).
		Count(&created).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count created tickets: %w", err)
	}

	var assigned int64
	if err := tx.
		Model(&models.TicketModel{}).
		Where("tecnico_id = ?", userID).
		Count(&assigned).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count assigned tickets: %w", err)
	}

	return created, assigned, nil
}

// GetStats aggregates the dashboard counters in one round trip per counter.
// scopeCreatorID narrows the shared counters; the Mine counter is always
// scoped to mineCreatorID.
func (r *TicketRepository) GetStats(ctx context.Context, scopeCreatorID *uint, mineCreatorID uint) (*ticket.Stats, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	scoped := func() *gorm.DB {
		q := tx.Model(&models.TicketModel{})
		if scopeCreatorID != nil {
			q = q.Where("criador_id = ?", *scopeCreatorID)
		}
		return q
	}

	stats := &ticket.Stats{}

	if err := scoped().Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}
	if err := scoped().Where("status = ?", vo.StatusOpen.String()).Count(&stats.Open).Error; err != nil {
		return nil, fmt.Errorf("failed to count open tickets: %w", err)
	}
	if err := scoped().Where("status = ?", vo.StatusInProgress.String()).Count(&stats.InProgress).Error; err != nil {
		return nil, fmt.Errorf("failed to count in-progress tickets: %w", err)
	}
	if err := scoped().Where("status = ?", vo.StatusResolved.String()).Count(&stats.Resolved).Error; err != nil {
		return nil, fmt.Errorf("failed to count resolved tickets: %w", err)
	}
	if err := tx.
		Model(&models.TicketModel{}).
		Where("criador_id = ?", mineCreatorID).
		Count(&stats.Mine).Error; err != nil {
		return nil, fmt.Errorf("failed to count own tickets: %w", err)
	}

	return stats, nil
}

func (r *TicketRepository) toDomainSlice(ticketModels []models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		tickets[i] = t
	}
	return tickets, nil
}
