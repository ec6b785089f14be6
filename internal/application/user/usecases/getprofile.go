package usecases

import (
	"context"

	ticketdto "helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetProfileCommand struct {
	UserID uint
}

// GetProfileUseCase assembles the profile page: the account, its ticket
// counters and its most recent tickets.
type GetProfileUseCase struct {
	userRepo   user.Repository
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetProfileUseCase(userRepo user.Repository, ticketRepo ticket.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo:   userRepo,
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, cmd GetProfileCommand) (*dto.ProfileDTO, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	account, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	scope := cmd.UserID
	stats, err := uc.ticketRepo.GetStats(ctx, &scope, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load profile stats", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to load statistics", err.Error())
	}

	recent, err := uc.ticketRepo.ListRecent(ctx, &scope, constants.DashboardRecent)
	if err != nil {
		uc.logger.Errorw("failed to load recent tickets", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to load tickets", err.Error())
	}

	recentDTOs := make([]ticketdto.TicketDTO, len(recent))
	techNames := make(map[uint]string)
	for i, t := range recent {
		item := ticketdto.TicketDTO{
			ID:          t.ID(),
			Title:       t.Title(),
			Description: t.Description(),
			Status:      t.Status().String(),
			Priority:    t.Priority().String(),
			CreatorID:   t.CreatorID(),
			CreatorName: account.Name(),
			Location:    t.Location(),
			Equipment:   t.Equipment(),
			CreatedAt:   t.CreatedAt(),
			UpdatedAt:   t.UpdatedAt(),
			ResolvedAt:  t.ResolvedAt(),
		}
		if techID := t.TechnicianID(); techID != nil {
			item.TechnicianID = techID
			name, ok := techNames[*techID]
			if !ok {
				if tech, err := uc.userRepo.FindByID(ctx, *techID); err == nil {
					name = tech.Name()
				}
				techNames[*techID] = name
			}
			item.TechnicianName = &name
		}
		recentDTOs[i] = item
	}

	return &dto.ProfileDTO{
		User:       userToDTO(account),
		Total:      stats.Total,
		Open:       stats.Open,
		InProgress: stats.InProgress,
		Resolved:   stats.Resolved,
		Recent:     recentDTOs,
	}, nil
}
