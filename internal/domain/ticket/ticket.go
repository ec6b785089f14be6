package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
)

type Ticket struct {
	id           uint
	title        string
	description  string
	status       vo.Status
	priority     vo.Priority
	creatorID    uint
	technicianID *uint
	location     string
	equipment    string
	attachments  string
	createdAt    time.Time
	updatedAt    time.Time
	resolvedAt   *time.Time
}

// NewTicket creates a ticket in the open state. Status and creator are never
// caller-overridable.
func NewTicket(
	title string,
	description string,
	priority vo.Priority,
	creatorID uint,
	location string,
	equipment string,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if len(location) > 200 {
		return nil, fmt.Errorf("location exceeds maximum length of 200 characters")
	}
	if len(equipment) > 100 {
		return nil, fmt.Errorf("equipment exceeds maximum length of 100 characters")
	}

	now := time.Now().UTC()
	return &Ticket{
		title:       title,
		description: description,
		status:      vo.StatusOpen,
		priority:    priority,
		creatorID:   creatorID,
		location:    location,
		equipment:   equipment,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence.
func ReconstructTicket(
	id uint,
	title string,
	description string,
	status vo.Status,
	priority vo.Priority,
	creatorID uint,
	technicianID *uint,
	location string,
	equipment string,
	attachments string,
	createdAt, updatedAt time.Time,
	resolvedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	return &Ticket{
		id:           id,
		title:        title,
		description:  description,
		status:       status,
		priority:     priority,
		creatorID:    creatorID,
		technicianID: technicianID,
		location:     location,
		equipment:    equipment,
		attachments:  attachments,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		resolvedAt:   resolvedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) TechnicianID() *uint {
	return t.technicianID
}

func (t *Ticket) Location() string {
	return t.location
}

func (t *Ticket) Equipment() string {
	return t.equipment
}

func (t *Ticket) Attachments() string {
	return t.attachments
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus sets the status directly. Entering resolvido stamps the
// resolution time; leaving it never clears the stamp, so "was once resolved"
// survives later triage.
func (t *Ticket) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	t.status = newStatus
	t.updatedAt = time.Now().UTC()

	if newStatus.IsResolved() {
		now := time.Now().UTC()
		t.resolvedAt = &now
	}

	return nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}

	if t.priority == newPriority {
		return nil
	}

	t.priority = newPriority
	t.updatedAt = time.Now().UTC()
	return nil
}

func (t *Ticket) AssignTo(technicianID uint) error {
	if technicianID == 0 {
		return fmt.Errorf("technician ID cannot be zero")
	}

	t.technicianID = &technicianID
	t.updatedAt = time.Now().UTC()
	return nil
}

func (t *Ticket) Unassign() {
	t.technicianID = nil
	t.updatedAt = time.Now().UTC()
}

// ForceReopen clears the technician and pushes the ticket back to aberto.
// Used by the technician-removal cascade; resolved and closed tickets keep
// their historical assignment and are never touched by it.
func (t *Ticket) ForceReopen() {
	t.technicianID = nil
	t.status = vo.StatusOpen
	t.updatedAt = time.Now().UTC()
}

// CanBeViewedBy reports whether the given user may see this ticket.
func (t *Ticket) CanBeViewedBy(userID uint, capabilities user.Capabilities) bool {
	if capabilities.Has(user.CapTriageTickets) || capabilities.Has(user.CapManageUsers) {
		return true
	}
	return t.creatorID == userID
}
