package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID     uint
	UserID       uint
	Capabilities user.Capabilities
}

type GetTicketUseCase struct {
	ticketRepo  ticket.Repository
	historyRepo ticket.HistoryRepository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	historyRepo ticket.HistoryRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error) {
	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	if !t.CanBeViewedBy(query.UserID, query.Capabilities) {
		uc.logger.Warnw("user not authorized to view ticket", "ticket_id", query.TicketID, "user_id", query.UserID)
		return nil, errors.NewForbiddenError("you do not have permission to view this ticket")
	}

	entries, err := uc.historyRepo.ListByTicket(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	resolver := newNameResolver(uc.userRepo)

	detail := &dto.TicketDetailDTO{
		Ticket:  ticketToDTO(ctx, t, resolver),
		History: make([]dto.HistoryEntryDTO, 0, len(entries)),
	}

	for _, entry := range entries {
		detail.History = append(detail.History, dto.HistoryEntryDTO{
			ID:          entry.ID(),
			ActorID:     entry.ActorID(),
			ActorName:   resolver.name(ctx, entry.ActorID()),
			Action:      entry.Action().String(),
			Description: entry.Description(),
			CreatedAt:   entry.CreatedAt(),
		})
	}

	// Triagers also get the roster of assignable technicians.
	if query.Capabilities.Has(user.CapTriageTickets) {
		technicians, err := uc.userRepo.ListTechnicians(ctx)
		if err != nil {
			return nil, err
		}
		for _, tech := range technicians {
			detail.Technicians = append(detail.Technicians, dto.TechnicianDTO{
				ID:    tech.ID(),
				Name:  tech.Name(),
				Email: tech.Email(),
			})
		}
	}

	return detail, nil
}
