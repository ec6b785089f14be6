package usecases

import (
	"context"
	"time"

	"helpdesk/internal/application/notification"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	Priority    string
	Location    string
	Equipment   string
	CreatorID   uint
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	Priority  string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo  ticket.Repository
	historyRepo ticket.HistoryRepository
	userRepo    user.Repository
	txManager   *db.TransactionManager
	notifier    notification.Notifier
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	historyRepo ticket.HistoryRepository,
	userRepo user.Repository,
	txManager *db.TransactionManager,
	notifier notification.Notifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "creator_id", cmd.CreatorID)

	if cmd.CreatorID == 0 {
		return nil, errors.NewValidationError("creator ID is required")
	}

	priorityValue := cmd.Priority
	if priorityValue == "" {
		priorityValue = vo.PriorityMedium.String()
	}
	priority, err := vo.NewPriority(priorityValue)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		cmd.Description,
		priority,
		cmd.CreatorID,
		cmd.Location,
		cmd.Equipment,
	)
	if err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	// Ticket row and its criacao history entry commit together.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, newTicket); err != nil {
			return err
		}

		entry, err := ticket.NewHistoryEntry(newTicket.ID(), cmd.CreatorID, ticket.ActionCreation, "Chamado criado")
		if err != nil {
			return err
		}
		return uc.historyRepo.Append(txCtx, entry)
	})
	if err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	// Post-commit: notification failure never rolls back the ticket.
	resolver := newNameResolver(uc.userRepo)
	delivered := uc.notifier.NotifyTicket(ctx, buildTicketNotification(ctx, newTicket, resolver, "Novo chamado criado"))
	if !delivered {
		uc.logger.Warnw("ticket notification not delivered", "ticket_id", newTicket.ID())
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "notified", delivered)

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status().String(),
		Priority:  newTicket.Priority().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}
