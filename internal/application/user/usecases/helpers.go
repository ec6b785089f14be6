package usecases

import (
	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
)

func userToDTO(u *user.User) dto.UserDTO {
	out := dto.UserDTO{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		Role:         u.Capabilities().RoleLabel(),
		Capabilities: u.Capabilities().Strings(),
		Active:       u.IsActive(),
		RegisteredAt: u.RegisteredAt(),
		LastAccessAt: u.LastAccessAt(),
	}

	if d := u.Deletion(); d != nil {
		at := d.At
		by := d.By
		out.DeletedAt = &at
		out.DeletedBy = &by
	}

	return out
}
