package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	infraauth "helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type AuthHandler struct {
	registerUC     usecases.RegisterUserExecutor
	authenticateUC usecases.AuthenticateUserExecutor
	checkEmailUC   usecases.CheckEmailAvailabilityExecutor
	jwtService     *infraauth.JWTService
	cookieConfig   config.CookieConfig
	logger         logger.Interface
}

func NewAuthHandler(
	registerUC usecases.RegisterUserExecutor,
	authenticateUC usecases.AuthenticateUserExecutor,
	checkEmailUC usecases.CheckEmailAvailabilityExecutor,
	jwtService *infraauth.JWTService,
	cookieConfig config.CookieConfig,
) *AuthHandler {
	return &AuthHandler{
		registerUC:     registerUC,
		authenticateUC: authenticateUC,
		checkEmailUC:   checkEmailUC,
		jwtService:     jwtService,
		cookieConfig:   cookieConfig,
		logger:         logger.NewLogger(),
	}
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.authenticateUC.Execute(c.Request.Context(), usecases.AuthenticateUserCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	token, err := h.jwtService.Generate(result.UserID, result.Capabilities)
	if err != nil {
		h.logger.Errorw("failed to generate session token", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to create session")
		return
	}

	maxAge := h.jwtService.SessionExpHours() * 3600
	utils.SetSessionCookie(c, h.cookieConfig, token, maxAge)

	utils.SuccessResponse(c, http.StatusOK, "Login realizado com sucesso", LoginResponse{
		UserID:       result.UserID,
		Name:         result.Name,
		Email:        result.Email,
		Capabilities: result.Capabilities,
	})
}

// Register handles POST /cadastro
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Registration opens a session right away. Self-registered accounts
	// carry no capabilities.
	token, err := h.jwtService.Generate(result.UserID, nil)
	if err != nil {
		h.logger.Errorw("failed to generate session token", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to create session")
		return
	}

	maxAge := h.jwtService.SessionExpHours() * 3600
	utils.SetSessionCookie(c, h.cookieConfig, token, maxAge)

	utils.CreatedResponse(c, result, "Cadastro realizado com sucesso")
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "Logout realizado com sucesso", nil)
}

// CheckEmail handles GET /verificar-email
func (h *AuthHandler) CheckEmail(c *gin.Context) {
	result, err := h.checkEmailUC.Execute(c.Request.Context(), usecases.CheckEmailAvailabilityCommand{
		Email: c.Query("email"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
