package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
)

type GetDashboardQuery struct {
	UserID       uint
	Capabilities user.Capabilities
}

type GetDashboardUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewGetDashboardUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, query GetDashboardQuery) (*dto.DashboardDTO, error) {
	isTriager := query.Capabilities.Has(user.CapTriageTickets)

	// Triagers see global counters; everyone else only their own tickets.
	var scope *uint
	if !isTriager {
		creatorID := query.UserID
		scope = &creatorID
	}

	stats, err := uc.ticketRepo.GetStats(ctx, scope, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket stats", "error", err)
		return nil, err
	}

	recent, err := uc.ticketRepo.ListRecent(ctx, scope, constants.DashboardRecent)
	if err != nil {
		uc.logger.Errorw("failed to load recent tickets", "error", err)
		return nil, err
	}

	resolver := newNameResolver(uc.userRepo)
	recentDTOs := make([]dto.TicketDTO, 0, len(recent))
	for _, t := range recent {
		recentDTOs = append(recentDTOs, ticketToDTO(ctx, t, resolver))
	}

	return &dto.DashboardDTO{
		Total:      stats.Total,
		Open:       stats.Open,
		InProgress: stats.InProgress,
		Resolved:   stats.Resolved,
		Mine:       stats.Mine,
		Recent:     recentDTOs,
	}, nil
}
