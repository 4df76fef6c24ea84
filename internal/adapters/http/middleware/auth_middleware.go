package middleware

import (
	"strings"

	"coopeasy/internal/config"
	"coopeasy/internal/core/domain"
	"coopeasy/internal/pkg/jwt"
	"coopeasy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Policy declares who may pass a route guard. Roles is the allow-list;
// RequireActive additionally shuts out members whose account application has
// not been approved yet. Staff roles are active by construction, so
// RequireActive only ever bites members. Status is read from the access
// token, so a fresh activation takes effect on the next token refresh.
type Policy struct {
	Roles         []domain.Role
	RequireActive bool
}

// Common policies, declared once and attached per route group.
var (
	AnyAuthenticated = Policy{Roles: []domain.Role{domain.RoleMember, domain.RoleAccountant, domain.RolePresident}}
	ActiveMember     = Policy{Roles: []domain.Role{domain.RoleMember}, RequireActive: true}
	MemberAny        = Policy{Roles: []domain.Role{domain.RoleMember}}
	AccountantOnly   = Policy{Roles: []domain.Role{domain.RoleAccountant}}
	PresidentOnly    = Policy{Roles: []domain.Role{domain.RolePresident}}
	StaffOnly        = Policy{Roles: []domain.Role{domain.RoleAccountant, domain.RolePresident}}
)

// AuthMiddleware validates the access token and loads the caller into the
// request context.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		// Cookie first, then Authorization header
		accessToken = c.Cookies("access_token")
		if accessToken == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				accessToken = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		c.Locals("userID", claims.UserID)
		c.Locals("email", claims.Email)
		c.Locals("name", claims.Name)
		c.Locals("role", claims.Role)
		c.Locals("status", claims.Status)

		return c.Next()
	}
}

// Guard enforces a Policy. It runs after AuthMiddleware and is the single
// place role and activation checks happen; handlers never re-check.
func Guard(p Policy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		allowed := false
		for _, r := range p.Roles {
			if role == string(r) {
				allowed = true
				break
			}
		}
		if !allowed {
			return response.Forbidden(c, "You don't have permission to access this resource")
		}

		if p.RequireActive && role == string(domain.RoleMember) {
			status, _ := c.Locals("status").(string)
			if status != domain.MemberActive {
				return response.Forbidden(c, "Your membership is awaiting approval")
			}
		}

		return c.Next()
	}
}

// ActorFromCtx builds the workflow actor for the authenticated caller.
func ActorFromCtx(c *fiber.Ctx) domain.Actor {
	id, _ := c.Locals("userID").(uint)
	name, _ := c.Locals("name").(string)
	role, _ := c.Locals("role").(string)
	return domain.Actor{ID: id, Name: name, Role: domain.Role(role)}
}
