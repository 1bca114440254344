package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// Principal represents the authenticated API client.
type Principal struct {
	ClientID string
}

// AuthMiddleware validates bearer tokens when authentication is enabled.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware. A nil token manager lets every request through.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	if m == nil || m.tokens == nil {
		return c.Next()
	}

	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(strings.TrimSpace(parts[1]))
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	c.Locals(principalKey, &Principal{ClientID: claims.ClientID})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated client.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

// ClientID returns the authenticated client id, or nil for anonymous requests.
func ClientID(c *fiber.Ctx) *string {
	principal, ok := PrincipalFromContext(c)
	if !ok || principal.ClientID == "" {
		return nil
	}
	id := principal.ClientID
	return &id
}
