package ticket

import (
	"fmt"
	"time"
)

// Action is the kind of audit event recorded for a ticket.
type Action string

const (
	ActionCreation Action = "criacao"
	ActionUpdate   Action = "atualizacao"
)

func (a Action) String() string {
	return string(a)
}

func (a Action) IsValid() bool {
	return a == ActionCreation || a == ActionUpdate
}

// HistoryEntry is an immutable audit record of one action taken on a ticket.
// Entries are only ever appended; the first entry for any ticket is always
// of kind criacao.
type HistoryEntry struct {
	id          uint
	ticketID    uint
	actorID     uint
	action      Action
	description string
	createdAt   time.Time
}

func NewHistoryEntry(ticketID, actorID uint, action Action, description string) (*HistoryEntry, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if actorID == 0 {
		return nil, fmt.Errorf("actor ID is required")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid history action: %s", action)
	}

	return &HistoryEntry{
		ticketID:    ticketID,
		actorID:     actorID,
		action:      action,
		description: description,
		createdAt:   time.Now().UTC(),
	}, nil
}

func ReconstructHistoryEntry(
	id uint,
	ticketID uint,
	actorID uint,
	action Action,
	description string,
	createdAt time.Time,
) (*HistoryEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("history entry ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &HistoryEntry{
		id:          id,
		ticketID:    ticketID,
		actorID:     actorID,
		action:      action,
		description: description,
		createdAt:   createdAt,
	}, nil
}

func (h *HistoryEntry) ID() uint {
	return h.id
}

func (h *HistoryEntry) TicketID() uint {
	return h.ticketID
}

func (h *HistoryEntry) ActorID() uint {
	return h.actorID
}

func (h *HistoryEntry) Action() Action {
	return h.action
}

func (h *HistoryEntry) Description() string {
	return h.description
}

func (h *HistoryEntry) CreatedAt() time.Time {
	return h.createdAt
}

func (h *HistoryEntry) SetID(id uint) error {
	if h.id != 0 {
		return fmt.Errorf("history entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("history entry ID cannot be zero")
	}
	h.id = id
	return nil
}
