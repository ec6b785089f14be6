package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type ListTicketsAPIQuery struct {
	UserID       uint
	Capabilities user.Capabilities
}

// ListTicketsAPIUseCase backs GET /api/chamados: the full ticket list scoped
// by caller privilege, names resolved and dates formatted.
type ListTicketsAPIUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewListTicketsAPIUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListTicketsAPIUseCase {
	return &ListTicketsAPIUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsAPIUseCase) Execute(ctx context.Context, query ListTicketsAPIQuery) ([]dto.TicketAPIDTO, error) {
	filter := ticket.Filter{}
	if !query.Capabilities.Has(user.CapTriageTickets) {
		creatorID := query.UserID
		filter.CreatorID = &creatorID
	}

	tickets, _, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets for API", "error", err)
		return nil, err
	}

	resolver := newNameResolver(uc.userRepo)
	items := make([]dto.TicketAPIDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, ticketToAPIDTO(ctx, t, resolver))
	}

	return items, nil
}
