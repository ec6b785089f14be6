package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type SoftDeleteUserCommand struct {
	TargetID uint
	ActorID  uint
}

// SoftDeleteUserUseCase marks an account deleted and, when the account is an
// assigned technician, releases its open tickets. The deletion, every ticket
// reset and every history entry commit together or not at all.
type SoftDeleteUserUseCase struct {
	userRepo    user.Repository
	ticketRepo  ticket.Repository
	historyRepo ticket.HistoryRepository
	txManager   *db.TransactionManager
	logger      logger.Interface
}

func NewSoftDeleteUserUseCase(
	userRepo user.Repository,
	ticketRepo ticket.Repository,
	historyRepo ticket.HistoryRepository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *SoftDeleteUserUseCase {
	return &SoftDeleteUserUseCase{
		userRepo:    userRepo,
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *SoftDeleteUserUseCase) Execute(ctx context.Context, cmd SoftDeleteUserCommand) error {
	if cmd.TargetID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if cmd.TargetID == cmd.ActorID {
		return errors.NewBadRequestError("você não pode excluir sua própria conta")
	}

	account, err := uc.userRepo.FindByID(ctx, cmd.TargetID)
	if err != nil {
		return errors.NewNotFoundError("user not found")
	}
	if account.IsDeleted() {
		return errors.NewBadRequestError("usuário já está excluído")
	}

	if err := account.SoftDelete(cmd.ActorID); err != nil {
		return errors.NewValidationError(err.Error())
	}

	released := 0
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.Update(txCtx, account); err != nil {
			return err
		}

		// Only tickets still being worked are released. Resolved and
		// closed tickets keep the technician for the record.
		assigned, err := uc.ticketRepo.ListAssignedActive(txCtx, cmd.TargetID)
		if err != nil {
			return err
		}

		for _, t := range assigned {
			t.ForceReopen()
			if err := uc.ticketRepo.Update(txCtx, t); err != nil {
				return err
			}

			entry, err := ticket.NewHistoryEntry(t.ID(), cmd.ActorID, ticket.ActionUpdate,
				"Técnico removido automaticamente (usuário excluído)")
			if err != nil {
				return err
			}
			if err := uc.historyRepo.Append(txCtx, entry); err != nil {
				return err
			}
		}
		released = len(assigned)
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to soft delete user", "user_id", cmd.TargetID, "error", err)
		return errors.NewInternalError(fmt.Sprintf("failed to delete user %d", cmd.TargetID), err.Error())
	}

	uc.logger.Infow("user soft deleted", "user_id", cmd.TargetID, "actor_id", cmd.ActorID, "tickets_released", released)
	return nil
}
