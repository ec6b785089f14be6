package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
)

// PasswordHasher hashes plaintext passwords and verifies them against a
// stored hash. The concrete implementation lives in infrastructure.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// RegisterUserExecutor defines the interface for self-service registration.
type RegisterUserExecutor interface {
	Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error)
}

// AuthenticateUserExecutor defines the interface for credential checks.
type AuthenticateUserExecutor interface {
	Execute(ctx context.Context, cmd AuthenticateUserCommand) (*AuthenticateUserResult, error)
}

// ChangePasswordExecutor defines the interface for password changes.
type ChangePasswordExecutor interface {
	Execute(ctx context.Context, cmd ChangePasswordCommand) error
}

// UpdateProfileExecutor defines the interface for profile edits.
type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.UserDTO, error)
}

// CreateUserExecutor defines the interface for administrative user creation.
type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error)
}

// ToggleUserActiveExecutor defines the interface for activating and
// deactivating accounts.
type ToggleUserActiveExecutor interface {
	Execute(ctx context.Context, cmd ToggleUserActiveCommand) (*dto.UserDTO, error)
}

// SoftDeleteUserExecutor defines the interface for reversible deletion.
type SoftDeleteUserExecutor interface {
	Execute(ctx context.Context, cmd SoftDeleteUserCommand) error
}

// RestoreUserExecutor defines the interface for undoing a soft deletion.
type RestoreUserExecutor interface {
	Execute(ctx context.Context, cmd RestoreUserCommand) (*dto.UserDTO, error)
}

// PermanentlyDeleteUserExecutor defines the interface for irreversible
// removal of a soft-deleted account.
type PermanentlyDeleteUserExecutor interface {
	Execute(ctx context.Context, cmd PermanentlyDeleteUserCommand) error
}

// ListUsersExecutor defines the interface for the user administration
// listings.
type ListUsersExecutor interface {
	Execute(ctx context.Context, cmd ListUsersCommand) ([]dto.UserDTO, error)
}

// CheckEmailAvailabilityExecutor defines the interface for the live email
// availability probe used by the registration form.
type CheckEmailAvailabilityExecutor interface {
	Execute(ctx context.Context, cmd CheckEmailAvailabilityCommand) (*CheckEmailAvailabilityResult, error)
}

// GetProfileExecutor defines the interface for the profile page payload.
type GetProfileExecutor interface {
	Execute(ctx context.Context, cmd GetProfileCommand) (*dto.ProfileDTO, error)
}
