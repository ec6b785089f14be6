package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ToggleUserActiveCommand struct {
	TargetID uint
	ActorID  uint
}

// ToggleUserActiveUseCase flips an account between active and inactive.
// Administrators cannot toggle their own account.
type ToggleUserActiveUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewToggleUserActiveUseCase(userRepo user.Repository, logger logger.Interface) *ToggleUserActiveUseCase {
	return &ToggleUserActiveUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ToggleUserActiveUseCase) Execute(ctx context.Context, cmd ToggleUserActiveCommand) (*dto.UserDTO, error) {
	if cmd.TargetID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.TargetID == cmd.ActorID {
		return nil, errors.NewBadRequestError("você não pode desativar sua própria conta")
	}

	account, err := uc.userRepo.FindByID(ctx, cmd.TargetID)
	if err != nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	if account.IsDeleted() {
		return nil, errors.NewBadRequestError("usuário excluído não pode ser alterado")
	}

	if account.IsActive() {
		account.Deactivate()
	} else {
		account.Activate()
	}

	if err := uc.userRepo.Update(ctx, account); err != nil {
		uc.logger.Errorw("failed to toggle user", "user_id", cmd.TargetID, "error", err)
		return nil, errors.NewInternalError("failed to update user", err.Error())
	}

	uc.logger.Infow("user toggled", "user_id", cmd.TargetID, "active", account.IsActive(), "actor_id", cmd.ActorID)

	result := userToDTO(account)
	return &result, nil
}
