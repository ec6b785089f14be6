package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
)

func TestCreateUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account with explicit capability set", func(t *testing.T) {
		var saved *user.User
		userRepo := &mockUserRepository{
			SaveFunc: func(ctx context.Context, u *user.User) error {
				saved = u
				return u.SetID(8)
			},
		}

		uc := NewCreateUserUseCase(userRepo, &mockPasswordHasher{}, &mockLogger{})

		result, err := uc.Execute(ctx, CreateUserCommand{
			Name:         "João Técnico",
			Email:        "joao@example.com",
			Password:     "senha123",
			Capabilities: []string{"assignable_technician"},
		})

		require.NoError(t, err)
		assert.Equal(t, uint(8), result.ID)
		assert.Equal(t, "Técnico", result.Role)
		assert.Equal(t, []string{"assignable_technician"}, result.Capabilities)

		require.NotNil(t, saved)
		assert.True(t, saved.Has(user.CapAssignableTechnician))
	})

	t.Run("unknown capability rejected", func(t *testing.T) {
		uc := NewCreateUserUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockLogger{})

		result, err := uc.Execute(ctx, CreateUserCommand{
			Name:         "João",
			Email:        "joao@example.com",
			Password:     "senha123",
			Capabilities: []string{"root"},
		})

		assert.Nil(t, result)
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	})

	t.Run("taken email conflicts", func(t *testing.T) {
		userRepo := &mockUserRepository{
			ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
				return true, nil
			},
		}

		uc := NewCreateUserUseCase(userRepo, &mockPasswordHasher{}, &mockLogger{})

		result, err := uc.Execute(ctx, CreateUserCommand{
			Name:     "João",
			Email:    "joao@example.com",
			Password: "senha123",
		})

		assert.Nil(t, result)
		assert.True(t, errors.IsConflictError(err))
	})
}

func TestListUsersUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("live listing uses active accounts", func(t *testing.T) {
		userRepo := &mockUserRepository{
			ListActiveFunc: func(ctx context.Context) ([]*user.User, error) {
				return []*user.User{
					testAccount(t, 1, "Admin", "admin@example.com", user.AdminCapabilities(), true, nil),
					testAccount(t, 2, "Maria", "maria@example.com", nil, true, nil),
				}, nil
			},
		}

		uc := NewListUsersUseCase(userRepo, &mockLogger{})

		out, err := uc.Execute(ctx, ListUsersCommand{})

		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "Administrador", out[0].Role)
		assert.Equal(t, "Usuário", out[1].Role)
	})

	t.Run("trash listing carries deletion metadata", func(t *testing.T) {
		deletion := &user.Deletion{At: time.Now().UTC(), By: 1}
		userRepo := &mockUserRepository{
			ListDeletedFunc: func(ctx context.Context) ([]*user.User, error) {
				return []*user.User{
					testAccount(t, 5, "Carlos", "carlos@example.com", nil, false, deletion),
				}, nil
			},
		}

		uc := NewListUsersUseCase(userRepo, &mockLogger{})

		out, err := uc.Execute(ctx, ListUsersCommand{Deleted: true})

		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.False(t, out[0].Active)
		require.NotNil(t, out[0].DeletedAt)
		require.NotNil(t, out[0].DeletedBy)
		assert.Equal(t, uint(1), *out[0].DeletedBy)
		assert.Equal(t, "carlos@example.com", out[0].Email)
	})
}

func TestUpdateProfileUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("changes name and email", func(t *testing.T) {
		var updated *user.User
		userRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
				return testAccount(t, 3, "Maria", "maria@example.com", nil, true, nil), nil
			},
			FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return nil, errors.NewNotFoundError("user not found")
			},
			UpdateFunc: func(ctx context.Context, u *user.User) error {
				updated = u
				return nil
			},
		}

		uc := NewUpdateProfileUseCase(userRepo, &mockLogger{})

		result, err := uc.Execute(ctx, UpdateProfileCommand{
			UserID: 3,
			Name:   "Maria Souza",
			Email:  "Maria.Souza@Example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "Maria Souza", result.Name)
		assert.Equal(t, "maria.souza@example.com", result.Email)
		require.NotNil(t, updated)
	})

	t.Run("email of another account conflicts", func(t *testing.T) {
		userRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
				return testAccount(t, 3, "Maria", "maria@example.com", nil, true, nil), nil
			},
			FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return testAccount(t, 9, "Outro", "outro@example.com", nil, true, nil), nil
			},
		}

		uc := NewUpdateProfileUseCase(userRepo, &mockLogger{})

		result, err := uc.Execute(ctx, UpdateProfileCommand{
			UserID: 3,
			Name:   "Maria",
			Email:  "outro@example.com",
		})

		assert.Nil(t, result)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("keeping own email is not a conflict", func(t *testing.T) {
		findByEmailCalled := false
		userRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
				return testAccount(t, 3, "Maria", "maria@example.com", nil, true, nil), nil
			},
			FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				findByEmailCalled = true
				return nil, nil
			},
		}

		uc := NewUpdateProfileUseCase(userRepo, &mockLogger{})

		result, err := uc.Execute(ctx, UpdateProfileCommand{
			UserID: 3,
			Name:   "Maria Souza",
			Email:  "maria@example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "Maria Souza", result.Name)
		assert.False(t, findByEmailCalled)
	})
}

func TestGetProfileUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("assembles account, counters and recent tickets", func(t *testing.T) {
		account := testAccount(t, 3, "Maria", "maria@example.com", nil, true, nil)
		techID := uint(7)
		now := time.Now().UTC()
		recent, err := ticket.ReconstructTicket(1, "Chamado", "desc", vo.StatusInProgress, vo.PriorityMedium, 3, &techID, "", "", "", now, now, nil)
		require.NoError(t, err)

		var statsScope *uint
		ticketRepo := &mockTicketRepository{
			GetStatsFunc: func(ctx context.Context, scopeCreatorID *uint, mineCreatorID uint) (*ticket.Stats, error) {
				statsScope = scopeCreatorID
				return &ticket.Stats{Total: 4, Open: 1, InProgress: 2, Resolved: 1, Mine: 4}, nil
			},
			ListRecentFunc: func(ctx context.Context, creatorID *uint, limit int) ([]*ticket.Ticket, error) {
				return []*ticket.Ticket{recent}, nil
			},
		}
		userRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
				if userID == 7 {
					return testAccount(t, 7, "João Técnico", "joao@example.com", user.TechnicianCapabilities(), true, nil), nil
				}
				return account, nil
			},
		}

		uc := NewGetProfileUseCase(userRepo, ticketRepo, &mockLogger{})

		profile, err := uc.Execute(ctx, GetProfileCommand{UserID: 3})

		require.NoError(t, err)
		assert.Equal(t, "Maria", profile.User.Name)
		require.NotNil(t, statsScope)
		assert.Equal(t, uint(3), *statsScope, "profile counters are always self-scoped")
		assert.Equal(t, int64(4), profile.Total)
		assert.Equal(t, int64(1), profile.Open)
		assert.Equal(t, int64(2), profile.InProgress)
		assert.Equal(t, int64(1), profile.Resolved)

		require.Len(t, profile.Recent, 1)
		assert.Equal(t, "Maria", profile.Recent[0].CreatorName)
		require.NotNil(t, profile.Recent[0].TechnicianName)
		assert.Equal(t, "João Técnico", *profile.Recent[0].TechnicianName)
	})
}
