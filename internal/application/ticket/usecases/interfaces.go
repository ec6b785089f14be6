package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type ApplyTicketUpdateExecutor interface {
	Execute(ctx context.Context, cmd ApplyTicketUpdateCommand) (*ApplyTicketUpdateResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type ListTicketsAPIExecutor interface {
	Execute(ctx context.Context, query ListTicketsAPIQuery) ([]dto.TicketAPIDTO, error)
}

type GetDashboardExecutor interface {
	Execute(ctx context.Context, query GetDashboardQuery) (*dto.DashboardDTO, error)
}
