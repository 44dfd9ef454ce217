package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ncastellanos/flotilla/internal/pkg/logger"
	"github.com/ncastellanos/flotilla/internal/pkg/models"
	"github.com/ncastellanos/flotilla/internal/utils"
	"github.com/ncastellanos/flotilla/services/fleet"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	authUC fleet.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC fleet.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// Register handles account creation requests
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.authUC.Register(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Registration rejected",
			logger.ErrorField(err),
			logger.String("username", req.Username),
		)
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", user)
}

// Login handles login requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}
