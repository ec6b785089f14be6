package usecases

import (
	"context"
	"strings"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateUserCommand struct {
	Name         string
	Email        string
	Password     string
	Capabilities []string
}

// CreateUserUseCase creates an account on behalf of an administrator, with
// an explicit capability set. Unlike self-registration it sends no welcome
// email.
type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing create user use case", "email", cmd.Email)

	if strings.TrimSpace(cmd.Name) == "" {
		return nil, errors.NewValidationError("name is required")
	}
	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError("password must be at least 6 characters")
	}

	capabilities, err := user.NewCapabilities(cmd.Capabilities)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))
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

	newUser, err := user.NewUser(strings.TrimSpace(cmd.Name), email, hash, capabilities)
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

	uc.logger.Infow("user created", "user_id", newUser.ID(), "role", newUser.RoleLabel())

	result := userToDTO(newUser)
	return &result, nil
}
