package usecases

import (
	"context"
	"strings"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CheckEmailAvailabilityCommand struct {
	Email string
}

type CheckEmailAvailabilityResult struct {
	Available bool   `json:"disponivel"`
	Message   string `json:"mensagem"`
}

// CheckEmailAvailabilityUseCase backs the live probe on the registration
// form. An address held by a soft-deleted account still counts as taken.
type CheckEmailAvailabilityUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewCheckEmailAvailabilityUseCase(userRepo user.Repository, logger logger.Interface) *CheckEmailAvailabilityUseCase {
	return &CheckEmailAvailabilityUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *CheckEmailAvailabilityUseCase) Execute(ctx context.Context, cmd CheckEmailAvailabilityCommand) (*CheckEmailAvailabilityResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" {
		return nil, errors.NewValidationError("email is required")
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, errors.NewInternalError("failed to check email", err.Error())
	}

	if exists {
		return &CheckEmailAvailabilityResult{Available: false, Message: "Email já cadastrado"}, nil
	}
	return &CheckEmailAvailabilityResult{Available: true, Message: "Email disponível"}, nil
}
