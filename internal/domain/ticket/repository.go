package ticket

import (
	"context"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// Filter narrows ticket listings. Nil fields mean no filtering; the "todos"
// sentinel from the query string is resolved to nil before reaching here.
type Filter struct {
	Status       *vo.Status
	Priority     *vo.Priority
	CreatorID    *uint
	TechnicianID *uint
	Page         int
	PageSize     int
}

// Stats aggregates ticket counts for the dashboard.
type Stats struct {
	Total      int64
	Open       int64
	InProgress int64
	Resolved   int64
	Mine       int64
}

type Repository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	FindByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	// ListRecent returns the most recently created tickets, optionally
	// scoped to a creator.
	ListRecent(ctx context.Context, creatorID *uint, limit int) ([]*Ticket, error)
	// ListAssignedActive returns tickets assigned to the technician that are
	// still aberto or em_andamento. Used by the removal cascade.
	ListAssignedActive(ctx context.Context, technicianID uint) ([]*Ticket, error)
	// CountByUser returns how many tickets reference the user as creator and
	// as technician, regardless of status.
	CountByUser(ctx context.Context, userID uint) (created int64, assigned int64, err error)
	GetStats(ctx context.Context, scopeCreatorID *uint, mineCreatorID uint) (*Stats, error)
}

// HistoryRepository is the append-only audit trail port. There is no update
// or delete operation.
type HistoryRepository interface {
	Append(ctx context.Context, entry *HistoryEntry) error
	// ListByTicket returns entries most-recent-first.
	ListByTicket(ctx context.Context, ticketID uint) ([]*HistoryEntry, error)
}
