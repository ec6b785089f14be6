package usecases

import (
	"context"

	"helpdesk/internal/application/notification"
	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
)

// nameResolver memoizes user name lookups within a single request so that
// listings do not refetch the same creator or technician row.
type nameResolver struct {
	userRepo user.Repository
	cache    map[uint]*user.User
}

func newNameResolver(userRepo user.Repository) *nameResolver {
	return &nameResolver{
		userRepo: userRepo,
		cache:    make(map[uint]*user.User),
	}
}

func (r *nameResolver) resolve(ctx context.Context, id uint) *user.User {
	if id == 0 {
		return nil
	}
	if u, ok := r.cache[id]; ok {
		return u
	}
	u, err := r.userRepo.FindByID(ctx, id)
	if err != nil {
		r.cache[id] = nil
		return nil
	}
	r.cache[id] = u
	return u
}

func (r *nameResolver) name(ctx context.Context, id uint) string {
	if u := r.resolve(ctx, id); u != nil {
		return u.Name()
	}
	return ""
}

func ticketToDTO(ctx context.Context, t *ticket.Ticket, resolver *nameResolver) dto.TicketDTO {
	out := dto.TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		CreatorID:   t.CreatorID(),
		CreatorName: resolver.name(ctx, t.CreatorID()),
		Location:    t.Location(),
		Equipment:   t.Equipment(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		ResolvedAt:  t.ResolvedAt(),
	}

	if techID := t.TechnicianID(); techID != nil {
		out.TechnicianID = techID
		name := resolver.name(ctx, *techID)
		out.TechnicianName = &name
	}

	return out
}

func ticketToAPIDTO(ctx context.Context, t *ticket.Ticket, resolver *nameResolver) dto.TicketAPIDTO {
	out := dto.TicketAPIDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		CreatedAt:   t.CreatedAt().Format(dto.DateTimeLayout),
		CreatorName: resolver.name(ctx, t.CreatorID()),
		Location:    t.Location(),
		Equipment:   t.Equipment(),
	}

	if techID := t.TechnicianID(); techID != nil {
		name := resolver.name(ctx, *techID)
		out.TechnicianName = &name
	}

	return out
}

func buildTicketNotification(ctx context.Context, t *ticket.Ticket, resolver *nameResolver, actionLabel string) notification.TicketNotification {
	n := notification.TicketNotification{
		TicketID:    t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		Location:    t.Location(),
		Equipment:   t.Equipment(),
		CreatorName: resolver.name(ctx, t.CreatorID()),
		CreatedAt:   t.CreatedAt(),
		ActionLabel: actionLabel,
	}

	if techID := t.TechnicianID(); techID != nil {
		if tech := resolver.resolve(ctx, *techID); tech != nil {
			n.TechnicianName = tech.Name()
			n.TechnicianEmail = tech.Email()
		}
	}

	return n
}
