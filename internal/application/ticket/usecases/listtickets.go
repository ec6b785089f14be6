package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// ListTicketsQuery filters the ticket listing. Status and Priority accept the
// "todos" sentinel (or empty) meaning no filter.
type ListTicketsQuery struct {
	UserID       uint
	Capabilities user.Capabilities
	Status       string
	Priority     string
	Page         int
	PageSize     int
}

type ListTicketsResult struct {
	Tickets []dto.TicketDTO
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := ticket.Filter{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	if query.Status != "" && query.Status != constants.FilterAll {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	if query.Priority != "" && query.Priority != constants.FilterAll {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	// Non-triagers only ever see their own tickets.
	if !query.Capabilities.Has(user.CapTriageTickets) {
		creatorID := query.UserID
		filter.CreatorID = &creatorID
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	resolver := newNameResolver(uc.userRepo)
	items := make([]dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, ticketToDTO(ctx, t, resolver))
	}

	return &ListTicketsResult{
		Tickets: items,
		Total:   total,
	}, nil
}
