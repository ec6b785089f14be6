package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListUsersCommand struct {
	// Deleted selects the trash listing instead of the live accounts.
	Deleted bool
}

// ListUsersUseCase backs the user administration screens: the live account
// table and the soft-deleted trash.
type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, cmd ListUsersCommand) ([]dto.UserDTO, error) {
	var (
		accounts []*user.User
		err      error
	)
	if cmd.Deleted {
		accounts, err = uc.userRepo.ListDeleted(ctx)
	} else {
		accounts, err = uc.userRepo.ListActive(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list users", "deleted", cmd.Deleted, "error", err)
		return nil, errors.NewInternalError("failed to list users", err.Error())
	}

	out := make([]dto.UserDTO, len(accounts))
	for i, account := range accounts {
		out[i] = userToDTO(account)
	}
	return out, nil
}
