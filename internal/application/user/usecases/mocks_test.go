package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"helpdesk/internal/application/notification"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
)

func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)
	return db.NewTransactionManager(gormDB)
}

type mockUserRepository struct {
	SaveFunc            func(ctx context.Context, u *user.User) error
	UpdateFunc          func(ctx context.Context, u *user.User) error
	DeleteFunc          func(ctx context.Context, userID uint) error
	FindByIDFunc        func(ctx context.Context, userID uint) (*user.User, error)
	FindByEmailFunc     func(ctx context.Context, email string) (*user.User, error)
	ExistsByEmailFunc   func(ctx context.Context, email string) (bool, error)
	ListActiveFunc      func(ctx context.Context) ([]*user.User, error)
	ListDeletedFunc     func(ctx context.Context) ([]*user.User, error)
	ListTechniciansFunc func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, userID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) ListActive(ctx context.Context) ([]*user.User, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) ListDeleted(ctx context.Context) ([]*user.User, error) {
	if m.ListDeletedFunc != nil {
		return m.ListDeletedFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) ListTechnicians(ctx context.Context) ([]*user.User, error) {
	if m.ListTechniciansFunc != nil {
		return m.ListTechniciansFunc(ctx)
	}
	return nil, nil
}

type mockTicketRepository struct {
	SaveFunc               func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc             func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc           func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc               func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	ListRecentFunc         func(ctx context.Context, creatorID *uint, limit int) ([]*ticket.Ticket, error)
	ListAssignedActiveFunc func(ctx context.Context, technicianID uint) ([]*ticket.Ticket, error)
	CountByUserFunc        func(ctx context.Context, userID uint) (int64, int64, error)
	GetStatsFunc           func(ctx context.Context, scopeCreatorID *uint, mineCreatorID uint) (*ticket.Stats, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) ListRecent(ctx context.Context, creatorID *uint, limit int) ([]*ticket.Ticket, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, creatorID, limit)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListAssignedActive(ctx context.Context, technicianID uint) ([]*ticket.Ticket, error) {
	if m.ListAssignedActiveFunc != nil {
		return m.ListAssignedActiveFunc(ctx, technicianID)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountByUser(ctx context.Context, userID uint) (int64, int64, error) {
	if m.CountByUserFunc != nil {
		return m.CountByUserFunc(ctx, userID)
	}
	return 0, 0, nil
}

func (m *mockTicketRepository) GetStats(ctx context.Context, scopeCreatorID *uint, mineCreatorID uint) (*ticket.Stats, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx, scopeCreatorID, mineCreatorID)
	}
	return &ticket.Stats{}, nil
}

type mockHistoryRepository struct {
	AppendFunc       func(ctx context.Context, entry *ticket.HistoryEntry) error
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error)
}

func (m *mockHistoryRepository) Append(ctx context.Context, entry *ticket.HistoryEntry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	return nil
}

func (m *mockHistoryRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

// mockPasswordHasher uses a reversible fake so tests can assert on the
// stored value without bcrypt cost.
type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hash, password string) bool
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(hash, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hash, password)
	}
	return hash == "hashed:"+password
}

type mockNotifier struct {
	NotifyTicketFunc  func(ctx context.Context, n notification.TicketNotification) bool
	NotifyWelcomeFunc func(ctx context.Context, n notification.WelcomeNotification) bool
}

func (m *mockNotifier) NotifyTicket(ctx context.Context, n notification.TicketNotification) bool {
	if m.NotifyTicketFunc != nil {
		return m.NotifyTicketFunc(ctx, n)
	}
	return true
}

func (m *mockNotifier) NotifyWelcome(ctx context.Context, n notification.WelcomeNotification) bool {
	if m.NotifyWelcomeFunc != nil {
		return m.NotifyWelcomeFunc(ctx, n)
	}
	return true
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	DebugwFunc func(msg string, keysAndValues ...interface{})
	InfowFunc  func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
