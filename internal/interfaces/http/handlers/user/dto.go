package user

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/errors"
)

type UpdateProfileRequest struct {
	Name  string `json:"nome" binding:"required"`
	Email string `json:"email" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"senha_atual" binding:"required"`
	NewPassword     string `json:"nova_senha" binding:"required"`
}

type CreateUserRequest struct {
	Name         string   `json:"nome" binding:"required"`
	Email        string   `json:"email" binding:"required"`
	Password     string   `json:"senha" binding:"required"`
	Capabilities []string `json:"capabilities"`
}

func (r *CreateUserRequest) ToCommand() usecases.CreateUserCommand {
	return usecases.CreateUserCommand{
		Name:         r.Name,
		Email:        r.Email,
		Password:     r.Password,
		Capabilities: r.Capabilities,
	}
}

func parseUserID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid user ID")
	}
	return uint(id), nil
}
