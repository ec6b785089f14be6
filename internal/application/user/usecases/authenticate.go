package usecases

import (
	"context"
	"strings"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AuthenticateUserCommand struct {
	Email    string
	Password string
}

type AuthenticateUserResult struct {
	UserID       uint
	Name         string
	Email        string
	Capabilities []string
}

// AuthenticateUserUseCase checks credentials for login. Unknown email, wrong
// password, inactive and soft-deleted accounts all fail with the same
// user-facing message so the response does not leak which one it was.
type AuthenticateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewAuthenticateUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *AuthenticateUserUseCase {
	return &AuthenticateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *AuthenticateUserUseCase) Execute(ctx context.Context, cmd AuthenticateUserCommand) (*AuthenticateUserResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewUnauthorizedError("email ou senha inválidos")
	}

	account, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		uc.logger.Infow("login failed: unknown email", "email", email)
		return nil, errors.NewUnauthorizedError("email ou senha inválidos")
	}

	if account.IsDeleted() || !account.IsActive() {
		uc.logger.Warnw("login attempt on inactive account", "user_id", account.ID())
		return nil, errors.NewUnauthorizedError("email ou senha inválidos")
	}

	if !uc.hasher.Verify(account.PasswordHash(), cmd.Password) {
		uc.logger.Infow("login failed: wrong password", "user_id", account.ID())
		return nil, errors.NewUnauthorizedError("email ou senha inválidos")
	}

	account.RecordAccess()
	if err := uc.userRepo.Update(ctx, account); err != nil {
		// Stamping last access is bookkeeping; a failed write must not
		// block an otherwise valid login.
		uc.logger.Warnw("failed to record last access", "user_id", account.ID(), "error", err)
	}

	uc.logger.Infow("user authenticated", "user_id", account.ID())

	return &AuthenticateUserResult{
		UserID:       account.ID(),
		Name:         account.Name(),
		Email:        account.Email(),
		Capabilities: account.Capabilities().Strings(),
	}, nil
}
