package repository

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"helpdesk/internal/application/notification"
	ticketusecases "helpdesk/internal/application/ticket/usecases"
	userusecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
)

type noopNotifier struct{}

func (noopNotifier) NotifyTicket(ctx context.Context, n notification.TicketNotification) bool {
	return true
}

func (noopNotifier) NotifyWelcome(ctx context.Context, n notification.WelcomeNotification) bool {
	return true
}

// The full path a new user takes: register, log in, open a ticket, check the
// dashboard. Exercises the real repositories and transaction manager against
// sqlite.
func TestRegisterCreateDashboardScenario(t *testing.T) {
	gormDB := setupTestDB(t)
	ctx := context.Background()

	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	userRepo := NewUserRepository(gormDB)
	ticketRepo := NewTicketRepository(gormDB)
	historyRepo := NewTicketHistoryRepository(gormDB)
	txManager := db.NewTransactionManager(gormDB)
	hasher := auth.NewBcryptPasswordHasher(bcrypt.MinCost)
	notifier := noopNotifier{}

	registerUC := userusecases.NewRegisterUserUseCase(userRepo, hasher, notifier, log)
	authUC := userusecases.NewAuthenticateUserUseCase(userRepo, hasher, log)
	createUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, historyRepo, userRepo, txManager, notifier, log)
	dashboardUC := ticketusecases.NewGetDashboardUseCase(ticketRepo, userRepo, log)
	getUC := ticketusecases.NewGetTicketUseCase(ticketRepo, historyRepo, userRepo, log)

	registered, err := registerUC.Execute(ctx, userusecases.RegisterUserCommand{
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		Password: "senha123",
	})
	require.NoError(t, err)

	authenticated, err := authUC.Execute(ctx, userusecases.AuthenticateUserCommand{
		Email:    "maria@example.com",
		Password: "senha123",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, authenticated.UserID)
	assert.Empty(t, authenticated.Capabilities)

	created, err := createUC.Execute(ctx, ticketusecases.CreateTicketCommand{
		Title:       "Sem acesso ao sistema",
		Description: "Senha expirada no ERP",
		CreatorID:   registered.UserID,
	})
	require.NoError(t, err)
	assert.Equal(t, "aberto", created.Status)
	assert.Equal(t, "media", created.Priority)

	dash, err := dashboardUC.Execute(ctx, ticketusecases.GetDashboardQuery{UserID: registered.UserID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), dash.Total)
	assert.Equal(t, int64(1), dash.Open)
	assert.Equal(t, int64(1), dash.Mine)
	require.Len(t, dash.Recent, 1)
	assert.Equal(t, "Maria Silva", dash.Recent[0].CreatorName)

	detail, err := getUC.Execute(ctx, ticketusecases.GetTicketQuery{
		TicketID: created.TicketID,
		UserID:   registered.UserID,
	})
	require.NoError(t, err)
	require.Len(t, detail.History, 1)
	assert.Equal(t, "Chamado criado", detail.History[0].Description)
	assert.Equal(t, "Maria Silva", detail.History[0].ActorName)
}
