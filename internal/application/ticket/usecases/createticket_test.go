package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/notification"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
)

func testUser(t *testing.T, id uint, name string, caps user.Capabilities) *user.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := user.ReconstructUser(id, name, fmt.Sprintf("user%d@example.com", id), "hash", caps, true, nil, now, nil, now)
	require.NoError(t, err)
	return u
}

func TestCreateTicketUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates ticket with criacao history entry", func(t *testing.T) {
		var savedTicket *ticket.Ticket
		var appendedEntry *ticket.HistoryEntry

		ticketRepo := &mockTicketRepository{
			SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				savedTicket = tk
				return tk.SetID(10)
			},
		}
		historyRepo := &mockHistoryRepository{
			AppendFunc: func(ctx context.Context, entry *ticket.HistoryEntry) error {
				appendedEntry = entry
				return entry.SetID(1)
			},
		}
		userRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
				return testUser(t, userID, "Criador", nil), nil
			},
		}
		notified := false
		notifier := &mockNotifier{
			NotifyTicketFunc: func(ctx context.Context, n notification.TicketNotification) bool {
				notified = true
				return true
			},
		}

		uc := NewCreateTicketUseCase(ticketRepo, historyRepo, userRepo, newTestTxManager(t), notifier, &mockLogger{})

		result, err := uc.Execute(ctx, CreateTicketCommand{
			Title:       "Impressora sem toner",
			Description: "Toner acabou na impressora do financeiro",
			Priority:    "alta",
			Location:    "Financeiro",
			Equipment:   "HP M404",
			CreatorID:   3,
		})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, uint(10), result.TicketID)
		assert.Equal(t, "aberto", result.Status)
		assert.Equal(t, "alta", result.Priority)

		require.NotNil(t, savedTicket)
		assert.Equal(t, uint(3), savedTicket.CreatorID())

		require.NotNil(t, appendedEntry)
		assert.Equal(t, uint(10), appendedEntry.TicketID())
		assert.Equal(t, uint(3), appendedEntry.ActorID())
		assert.Equal(t, ticket.ActionCreation, appendedEntry.Action())
		assert.Equal(t, "Chamado criado", appendedEntry.Description())

		assert.True(t, notified)
	})

	t.Run("empty priority defaults to media", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				return tk.SetID(11)
			},
		}

		uc := NewCreateTicketUseCase(ticketRepo, &mockHistoryRepository{}, &mockUserRepository{}, newTestTxManager(t), &mockNotifier{}, &mockLogger{})

		result, err := uc.Execute(ctx, CreateTicketCommand{
			Title:       "Teclado com defeito",
			Description: "Teclas não respondem",
			CreatorID:   3,
		})

		require.NoError(t, err)
		assert.Equal(t, "media", result.Priority)
	})

	t.Run("invalid priority rejected", func(t *testing.T) {
		uc := NewCreateTicketUseCase(&mockTicketRepository{}, &mockHistoryRepository{}, &mockUserRepository{}, newTestTxManager(t), &mockNotifier{}, &mockLogger{})

		result, err := uc.Execute(ctx, CreateTicketCommand{
			Title:       "Titulo",
			Description: "Descricao",
			Priority:    "critical",
			CreatorID:   3,
		})

		assert.Nil(t, result)
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	})

	t.Run("missing title rejected before any write", func(t *testing.T) {
		saveCalled := false
		ticketRepo := &mockTicketRepository{
			SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				saveCalled = true
				return nil
			},
		}

		uc := NewCreateTicketUseCase(ticketRepo, &mockHistoryRepository{}, &mockUserRepository{}, newTestTxManager(t), &mockNotifier{}, &mockLogger{})

		_, err := uc.Execute(ctx, CreateTicketCommand{
			Description: "Descricao",
			CreatorID:   3,
		})

		assert.Error(t, err)
		assert.False(t, saveCalled)
	})

	t.Run("history append failure rolls back the creation", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				return tk.SetID(12)
			},
		}
		historyRepo := &mockHistoryRepository{
			AppendFunc: func(ctx context.Context, entry *ticket.HistoryEntry) error {
				return fmt.Errorf("insert failed")
			},
		}
		notified := false
		notifier := &mockNotifier{
			NotifyTicketFunc: func(ctx context.Context, n notification.TicketNotification) bool {
				notified = true
				return true
			},
		}

		uc := NewCreateTicketUseCase(ticketRepo, historyRepo, &mockUserRepository{}, newTestTxManager(t), notifier, &mockLogger{})

		result, err := uc.Execute(ctx, CreateTicketCommand{
			Title:       "Titulo",
			Description: "Descricao",
			CreatorID:   3,
		})

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.False(t, notified, "no notification after a failed commit")
	})

	t.Run("notification failure does not fail the creation", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				return tk.SetID(13)
			},
		}
		notifier := &mockNotifier{
			NotifyTicketFunc: func(ctx context.Context, n notification.TicketNotification) bool {
				return false
			},
		}

		uc := NewCreateTicketUseCase(ticketRepo, &mockHistoryRepository{}, &mockUserRepository{}, newTestTxManager(t), notifier, &mockLogger{})

		result, err := uc.Execute(ctx, CreateTicketCommand{
			Title:       "Titulo",
			Description: "Descricao",
			CreatorID:   3,
		})

		require.NoError(t, err)
		assert.Equal(t, uint(13), result.TicketID)
	})
}
