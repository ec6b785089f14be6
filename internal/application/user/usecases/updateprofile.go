package usecases

import (
	"context"
	"strings"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateProfileCommand struct {
	UserID uint
	Name   string
	Email  string
}

// UpdateProfileUseCase changes the authenticated user's display name and
// email. The new email must not belong to any other account, soft-deleted
// ones included.
type UpdateProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.UserDTO, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	account, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email != account.Email() {
		other, err := uc.userRepo.FindByEmail(ctx, email)
		if err == nil && other.ID() != account.ID() {
			return nil, errors.NewConflictError("email já cadastrado")
		}
	}

	if err := account.UpdateProfile(strings.TrimSpace(cmd.Name), email); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, account); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email já cadastrado")
		}
		uc.logger.Errorw("failed to update profile", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to update user", err.Error())
	}

	uc.logger.Infow("profile updated", "user_id", cmd.UserID)

	result := userToDTO(account)
	return &result, nil
}
