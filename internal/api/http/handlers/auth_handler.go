package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/api/dto"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/service"
	apperrors "github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/pkg/util/errorutil"
)

// AuthHandler issues API tokens.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Token POST /auth/token.
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ClientID == "" || req.ClientSecret == "" {
		return apperrors.NewValidationError("client_id and client_secret required", nil)
	}

	token, err := h.auth.IssueToken(req.ClientID, req.ClientSecret)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": dto.AuthResponse{Token: token.Value, ExpiresAt: token.ExpiresAt},
	})
}
