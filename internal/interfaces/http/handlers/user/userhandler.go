package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type UserHandler struct {
	getProfileUC      usecases.GetProfileExecutor
	updateProfileUC   usecases.UpdateProfileExecutor
	changePasswordUC  usecases.ChangePasswordExecutor
	createUserUC      usecases.CreateUserExecutor
	listUsersUC       usecases.ListUsersExecutor
	toggleActiveUC    usecases.ToggleUserActiveExecutor
	softDeleteUC      usecases.SoftDeleteUserExecutor
	restoreUC         usecases.RestoreUserExecutor
	permanentDeleteUC usecases.PermanentlyDeleteUserExecutor
	logger            logger.Interface
}

func NewUserHandler(
	getProfileUC usecases.GetProfileExecutor,
	updateProfileUC usecases.UpdateProfileExecutor,
	changePasswordUC usecases.ChangePasswordExecutor,
	createUserUC usecases.CreateUserExecutor,
	listUsersUC usecases.ListUsersExecutor,
	toggleActiveUC usecases.ToggleUserActiveExecutor,
	softDeleteUC usecases.SoftDeleteUserExecutor,
	restoreUC usecases.RestoreUserExecutor,
	permanentDeleteUC usecases.PermanentlyDeleteUserExecutor,
) *UserHandler {
	return &UserHandler{
		getProfileUC:      getProfileUC,
		updateProfileUC:   updateProfileUC,
		changePasswordUC:  changePasswordUC,
		createUserUC:      createUserUC,
		listUsersUC:       listUsersUC,
		toggleActiveUC:    toggleActiveUC,
		softDeleteUC:      softDeleteUC,
		restoreUC:         restoreUC,
		permanentDeleteUC: permanentDeleteUC,
		logger:            logger.NewLogger(),
	}
}

// GetProfile handles GET /perfil
func (h *UserHandler) GetProfile(c *gin.Context) {
	result, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileCommand{
		UserID: middleware.UserIDFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateProfile handles POST /perfil/atualizar
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update profile", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateProfileUC.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserID: middleware.UserIDFromContext(c),
		Name:   req.Name,
		Email:  req.Email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Perfil atualizado com sucesso", result)
}

// ChangePassword handles POST /perfil/alterar-senha
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change password", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	err := h.changePasswordUC.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		UserID:          middleware.UserIDFromContext(c),
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Senha alterada com sucesso", nil)
}

// ListUsers handles GET /usuarios
func (h *UserHandler) ListUsers(c *gin.Context) {
	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersCommand{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListDeletedUsers handles GET /usuarios/excluidos
func (h *UserHandler) ListDeletedUsers(c *gin.Context) {
	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersCommand{Deleted: true})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateUser handles POST /usuarios
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Usuário criado com sucesso")
}

// ToggleActive handles POST /usuarios/:id/toggle
func (h *UserHandler) ToggleActive(c *gin.Context) {
	targetID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.toggleActiveUC.Execute(c.Request.Context(), usecases.ToggleUserActiveCommand{
		TargetID: targetID,
		ActorID:  middleware.UserIDFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Usuário atualizado com sucesso", result)
}

// SoftDelete handles POST /usuarios/:id/excluir
func (h *UserHandler) SoftDelete(c *gin.Context) {
	targetID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.softDeleteUC.Execute(c.Request.Context(), usecases.SoftDeleteUserCommand{
		TargetID: targetID,
		ActorID:  middleware.UserIDFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Usuário excluído com sucesso", nil)
}

// Restore handles POST /usuarios/:id/restaurar
func (h *UserHandler) Restore(c *gin.Context) {
	targetID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.restoreUC.Execute(c.Request.Context(), usecases.RestoreUserCommand{
		TargetID: targetID,
		ActorID:  middleware.UserIDFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Usuário restaurado com sucesso", result)
}

// PermanentDelete handles POST /usuarios/:id/excluir-permanente
func (h *UserHandler) PermanentDelete(c *gin.Context) {
	targetID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.permanentDeleteUC.Execute(c.Request.Context(), usecases.PermanentlyDeleteUserCommand{
		TargetID: targetID,
		ActorID:  middleware.UserIDFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Usuário removido permanentemente", nil)
}
