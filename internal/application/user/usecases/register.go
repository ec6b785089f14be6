package usecases

import (
	"context"
	"strings"

	"helpdesk/internal/application/notification"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

const minPasswordLength = 6

type RegisterUserCommand struct {
	Name     string
	Email    string
	Password string
}

type RegisterUserResult struct {
	UserID uint
	Name   string
	Email  string
}

// RegisterUserUseCase handles self-service registration. New accounts start
// active with no capabilities.
type RegisterUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	notifier notification.Notifier
	logger   logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	notifier notification.Notifier,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	uc.logger.Infow("executing register user use case", "email", cmd.Email)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	// The collision check covers every row, soft-deleted accounts included:
	// a deleted account keeps its address reserved until permanent removal.
	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, errors.NewInternalError("failed to check email", err.Error())
	}
	if exists {
		return nil, errors.NewConflictError("email já cadastrado")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password", err.Error())
	}

	newUser, err := user.NewUser(strings.TrimSpace(cmd.Name), email, hash, nil)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email já cadastrado")
		}
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, errors.NewInternalError("failed to save user", err.Error())
	}

	// Post-commit welcome email. Outcome is logged, never surfaced.
	delivered := uc.notifier.NotifyWelcome(ctx, notification.WelcomeNotification{
		Name:         newUser.Name(),
		Email:        newUser.Email(),
		RegisteredAt: newUser.RegisteredAt(),
	})
	if !delivered {
		uc.logger.Warnw("welcome notification not delivered", "user_id", newUser.ID())
	}

	uc.logger.Infow("user registered successfully", "user_id", newUser.ID(), "notified", delivered)

	return &RegisterUserResult{
		UserID: newUser.ID(),
		Name:   newUser.Name(),
		Email:  newUser.Email(),
	}, nil
}

func (uc *RegisterUserUseCase) validateCommand(cmd RegisterUserCommand) error {
	if strings.TrimSpace(cmd.Name) == "" {
		return errors.NewValidationError("name is required")
	}
	if strings.TrimSpace(cmd.Email) == "" {
		return errors.NewValidationError("email is required")
	}
	if len(cmd.Password) < minPasswordLength {
		return errors.NewValidationError("password must be at least 6 characters")
	}
	return nil
}
