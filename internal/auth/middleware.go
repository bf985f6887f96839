package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/moderation-service/internal/domain"
	"github.com/spec-kit/moderation-service/internal/repository"
	apperrors "github.com/spec-kit/moderation-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal is the authenticated caller with its resolved role. The role is
// taken from the loaded profile record, not from the token, so a role change
// takes effect on the next request.
type Principal struct {
	Profile *domain.Profile
	Role    domain.ProfileRole
}

// Middleware validates bearer tokens and resolves principals.
type Middleware struct {
	tokens   *TokenManager
	profiles repository.ProfileRepository
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager, profiles repository.ProfileRepository) *Middleware {
	return &Middleware{tokens: tokens, profiles: profiles}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	profile, err := m.profiles.GetByID(c.Context(), claims.ProfileID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewUnauthorized("profile not found")
		}
		return apperrors.MapError(err)
	}
	if profile.Status == domain.ProfileStatusSuspended {
		return apperrors.NewForbidden("account suspended")
	}

	c.Locals(principalKey, &Principal{Profile: profile, Role: profile.Role})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
