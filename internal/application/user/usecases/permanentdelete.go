package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type PermanentlyDeleteUserCommand struct {
	TargetID uint
	ActorID  uint
}

// PermanentlyDeleteUserUseCase removes a soft-deleted account for good.
// Accounts referenced by any ticket, as creator or technician, cannot be
// removed; the references would dangle.
type PermanentlyDeleteUserUseCase struct {
	userRepo   user.Repository
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewPermanentlyDeleteUserUseCase(userRepo user.Repository, ticketRepo ticket.Repository, logger logger.Interface) *PermanentlyDeleteUserUseCase {
	return &PermanentlyDeleteUserUseCase{
		userRepo:   userRepo,
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *PermanentlyDeleteUserUseCase) Execute(ctx context.Context, cmd PermanentlyDeleteUserCommand) error {
	if cmd.TargetID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	account, err := uc.userRepo.FindByID(ctx, cmd.TargetID)
	if err != nil {
		return errors.NewNotFoundError("user not found")
	}
	if !account.IsDeleted() {
		return errors.NewBadRequestError("apenas usuários excluídos podem ser removidos permanentemente")
	}

	created, assigned, err := uc.ticketRepo.CountByUser(ctx, cmd.TargetID)
	if err != nil {
		uc.logger.Errorw("failed to count user tickets", "user_id", cmd.TargetID, "error", err)
		return errors.NewInternalError("failed to count tickets", err.Error())
	}
	if created > 0 || assigned > 0 {
		return errors.NewBadRequestError("usuário possui chamados associados e não pode ser removido permanentemente")
	}

	if err := uc.userRepo.Delete(ctx, cmd.TargetID); err != nil {
		uc.logger.Errorw("failed to permanently delete user", "user_id", cmd.TargetID, "error", err)
		return errors.NewInternalError("failed to delete user", err.Error())
	}

	uc.logger.Infow("user permanently deleted", "user_id", cmd.TargetID, "actor_id", cmd.ActorID)
	return nil
}
