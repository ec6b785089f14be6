package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ChangePasswordCommand struct {
	UserID          uint
	CurrentPassword string
	NewPassword     string
}

// ChangePasswordUseCase lets an authenticated user replace their own
// password after proving they know the current one.
type ChangePasswordUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewChangePasswordUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if len(cmd.NewPassword) < minPasswordLength {
		return errors.NewValidationError("password must be at least 6 characters")
	}

	account, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return errors.NewNotFoundError("user not found")
	}

	if !uc.hasher.Verify(account.PasswordHash(), cmd.CurrentPassword) {
		return errors.NewUnauthorizedError("senha atual incorreta")
	}

	hash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return errors.NewInternalError("failed to hash password", err.Error())
	}

	if err := account.ChangePasswordHash(hash); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, account); err != nil {
		uc.logger.Errorw("failed to update password", "user_id", cmd.UserID, "error", err)
		return errors.NewInternalError("failed to update user", err.Error())
	}

	uc.logger.Infow("password changed", "user_id", cmd.UserID)
	return nil
}
