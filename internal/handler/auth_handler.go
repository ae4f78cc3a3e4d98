package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"society-billing-svc/internal/middleware"
	"society-billing-svc/internal/service"
	"society-billing-svc/pkg/apperrors"
	"society-billing-svc/pkg/logger"
	"society-billing-svc/pkg/utils"
)

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the signed session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// AuthHandler handles admin authentication requests
type AuthHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(authService service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login authenticates the admin and issues a signed session token
// @Summary Admin login
// @Description Validate admin credentials and issue a signed session token, also set as the auth-token cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Admin credentials"
// @Success 200 {object} utils.APIResponse{data=LoginResponse} "Login successful"
// @Failure 401 {object} utils.APIResponse "Invalid username or password"
// @Failure 503 {object} utils.APIResponse "Admin credentials not configured"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			utils.UnauthorizedResponse(c, "Invalid username or password")
			return
		}
		var dErr *apperrors.DependencyError
		if errors.As(err, &dErr) {
			h.logger.Error("Admin credentials not configured in environment variables")
			utils.ServiceUnavailableResponse(c, dErr.Message)
			return
		}
		h.logger.WithError(err).Error("Failed to issue session token")
		utils.InternalServerErrorResponse(c, "Failed to log in", err)
		return
	}

	// Cookie for browser clients; API clients can use the bearer header.
	c.SetCookie(middleware.AuthCookieName, token, 0, "/", "", false, true)

	h.logger.Info("Admin logged in successfully")

	utils.SuccessResponse(c, "Login successful", LoginResponse{Token: token})
}
