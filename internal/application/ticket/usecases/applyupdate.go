package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"helpdesk/internal/application/notification"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// ApplyTicketUpdateCommand carries the triage form fields. Nil pointers mean
// "not supplied"; an empty TechnicianID string is an explicit unassignment.
type ApplyTicketUpdateCommand struct {
	TicketID          uint
	ActorID           uint
	ActorCapabilities user.Capabilities
	Status            *string
	Priority          *string
	TechnicianID      *string
	Comment           string
}

type ApplyTicketUpdateResult struct {
	TicketID  uint
	Changed   bool
	Status    string
	Priority  string
	UpdatedAt time.Time
}

type ApplyTicketUpdateUseCase struct {
	ticketRepo  ticket.Repository
	historyRepo ticket.HistoryRepository
	userRepo    user.Repository
	txManager   *db.TransactionManager
	notifier    notification.Notifier
	logger      logger.Interface
}

func NewApplyTicketUpdateUseCase(
	ticketRepo ticket.Repository,
	historyRepo ticket.HistoryRepository,
	userRepo user.Repository,
	txManager *db.TransactionManager,
	notifier notification.Notifier,
	logger logger.Interface,
) *ApplyTicketUpdateUseCase {
	return &ApplyTicketUpdateUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *ApplyTicketUpdateUseCase) Execute(ctx context.Context, cmd ApplyTicketUpdateCommand) (*ApplyTicketUpdateResult, error) {
	uc.logger.Infow("executing apply ticket update use case", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)

	if !cmd.ActorCapabilities.Has(user.CapTriageTickets) {
		uc.logger.Warnw("user not authorized to triage tickets", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)
		return nil, errors.NewForbiddenError("only administrators can update tickets")
	}

	var (
		result  *ApplyTicketUpdateResult
		updated *ticket.Ticket
	)

	// Read current state, compute the diff and write row plus history entry
	// inside one transaction.
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.ticketRepo.FindByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		changes, err := uc.applyChanges(txCtx, existing, cmd)
		if err != nil {
			return err
		}

		if len(changes) == 0 && cmd.Comment == "" {
			result = &ApplyTicketUpdateResult{
				TicketID:  existing.ID(),
				Changed:   false,
				Status:    existing.Status().String(),
				Priority:  existing.Priority().String(),
				UpdatedAt: existing.UpdatedAt(),
			}
			return nil
		}

		description := strings.Join(changes, ", ")
		if cmd.Comment != "" {
			if description != "" {
				description += fmt.Sprintf(". Comentário: %s", cmd.Comment)
			} else {
				description = fmt.Sprintf("Comentário: %s", cmd.Comment)
			}
		}

		entry, err := ticket.NewHistoryEntry(existing.ID(), cmd.ActorID, ticket.ActionUpdate, description)
		if err != nil {
			return err
		}
		if err := uc.historyRepo.Append(txCtx, entry); err != nil {
			return err
		}

		if err := uc.ticketRepo.Update(txCtx, existing); err != nil {
			return err
		}

		updated = existing
		result = &ApplyTicketUpdateResult{
			TicketID:  existing.ID(),
			Changed:   true,
			Status:    existing.Status().String(),
			Priority:  existing.Priority().String(),
			UpdatedAt: existing.UpdatedAt(),
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if updated != nil {
		resolver := newNameResolver(uc.userRepo)
		delivered := uc.notifier.NotifyTicket(ctx, buildTicketNotification(ctx, updated, resolver, "Chamado atualizado"))
		if !delivered {
			uc.logger.Warnw("ticket notification not delivered", "ticket_id", updated.ID())
		}
	}

	return result, nil
}

// applyChanges mutates the ticket in place and returns the human-readable
// change descriptions. Only fields whose supplied value differs from the
// current one produce a description.
func (uc *ApplyTicketUpdateUseCase) applyChanges(ctx context.Context, t *ticket.Ticket, cmd ApplyTicketUpdateCommand) ([]string, error) {
	var changes []string

	if cmd.Status != nil && *cmd.Status != "" && *cmd.Status != t.Status().String() {
		newStatus, err := vo.NewStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		changes = append(changes, fmt.Sprintf("Status alterado de %s para %s", t.Status(), newStatus))
		if err := t.ChangeStatus(newStatus); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Priority != nil && *cmd.Priority != "" && *cmd.Priority != t.Priority().String() {
		newPriority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		changes = append(changes, fmt.Sprintf("Prioridade alterada de %s para %s", t.Priority(), newPriority))
		if err := t.ChangePriority(newPriority); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.TechnicianID != nil {
		if *cmd.TechnicianID == "" {
			if t.TechnicianID() != nil {
				changes = append(changes, "Atribuição removida")
				t.Unassign()
			}
		} else {
			techID, err := strconv.ParseUint(*cmd.TechnicianID, 10, 32)
			if err != nil {
				return nil, errors.NewValidationError("invalid technician ID")
			}
			newTechID := uint(techID)
			if current := t.TechnicianID(); current == nil || *current != newTechID {
				tech, err := uc.userRepo.FindByID(ctx, newTechID)
				if err != nil {
					if !errors.IsNotFoundError(err) {
						uc.logger.Errorw("failed to load technician", "error", err,
							"ticket_id", t.ID(), "technician_id", newTechID)
						return nil, errors.NewInternalError("failed to load technician", err.Error())
					}
					// Unknown technician: skip the reassignment, keep the
					// rest of the update.
					uc.logger.Warnw("technician not found, skipping assignment",
						"ticket_id", t.ID(), "technician_id", newTechID)
				} else {
					changes = append(changes, fmt.Sprintf("Chamado atribuído a %s", tech.Name()))
					if err := t.AssignTo(newTechID); err != nil {
						return nil, errors.NewValidationError(err.Error())
					}
				}
			}
		}
	}

	return changes, nil
}
