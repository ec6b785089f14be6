package auth

import "helpdesk/internal/application/user/usecases"

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"senha" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"nome" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"senha" binding:"required"`
}

func (r *RegisterRequest) ToCommand() usecases.RegisterUserCommand {
	return usecases.RegisterUserCommand{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

type LoginResponse struct {
	UserID       uint     `json:"user_id"`
	Name         string   `json:"nome"`
	Email        string   `json:"email"`
	Capabilities []string `json:"capabilities"`
}
