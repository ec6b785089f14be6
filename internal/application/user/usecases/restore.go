package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RestoreUserCommand struct {
	TargetID uint
	ActorID  uint
}

// RestoreUserUseCase undoes a soft deletion. The account comes back active
// with its original email, since deletion never rewrote it.
type RestoreUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewRestoreUserUseCase(userRepo user.Repository, logger logger.Interface) *RestoreUserUseCase {
	return &RestoreUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *RestoreUserUseCase) Execute(ctx context.Context, cmd RestoreUserCommand) (*dto.UserDTO, error) {
	if cmd.TargetID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	account, err := uc.userRepo.FindByID(ctx, cmd.TargetID)
	if err != nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	if !account.IsDeleted() {
		return nil, errors.NewBadRequestError("usuário não está excluído")
	}

	if err := account.Restore(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, account); err != nil {
		uc.logger.Errorw("failed to restore user", "user_id", cmd.TargetID, "error", err)
		return nil, errors.NewInternalError("failed to update user", err.Error())
	}

	uc.logger.Infow("user restored", "user_id", cmd.TargetID, "actor_id", cmd.ActorID)

	result := userToDTO(account)
	return &result, nil
}
