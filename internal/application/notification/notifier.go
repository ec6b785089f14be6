// Package notification defines the outbound notification port consumed by the
// lifecycle usecases. Delivery is best-effort: implementations report a
// delivered/not-delivered outcome and never return an error, so a failed
// email can never undo or block the mutation that triggered it.
package notification

import (
	"context"
	"time"
)

// TicketNotification carries everything the mail template needs about a
// ticket event. Recipients are the fixed operations mailbox plus the assigned
// technician, deduplicated.
type TicketNotification struct {
	TicketID        uint
	Title           string
	Description     string
	Status          string
	Priority        string
	Location        string
	Equipment       string
	CreatorName     string
	CreatedAt       time.Time
	TechnicianName  string
	TechnicianEmail string
	ActionLabel     string
}

// WelcomeNotification is sent once, best-effort, after self-registration.
type WelcomeNotification struct {
	Name         string
	Email        string
	RegisteredAt time.Time
}

type Notifier interface {
	NotifyTicket(ctx context.Context, n TicketNotification) bool
	NotifyWelcome(ctx context.Context, n WelcomeNotification) bool
}
