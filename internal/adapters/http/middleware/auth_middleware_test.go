package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"coopeasy/internal/config"
	"coopeasy/internal/core/domain"
	"coopeasy/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

func testJWTConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:          "test-access-secret",
			AccessTokenMins: 15,
		},
	}
}

func guardedApp(cfg *config.Config, p Policy) *fiber.App {
	app := fiber.New()
	app.Get("/guarded", AuthMiddleware(cfg), Guard(p), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func tokenFor(t *testing.T, cfg *config.Config, role, status string) string {
	t.Helper()
	token, err := jwt.GenerateAccessToken(7, "user@example.com", "Ama Mensah", role, status, cfg.JWT.Secret, cfg.JWT.AccessTokenMins)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func requestWithToken(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAuthMiddlewareRejectsMissingAndBadTokens(t *testing.T) {
	cfg := testJWTConfig()
	app := guardedApp(cfg, AnyAuthenticated)

	resp, err := app.Test(requestWithToken(""))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", resp.StatusCode)
	}

	resp, err = app.Test(requestWithToken("not-a-jwt"))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", resp.StatusCode)
	}

	// Token signed with a different secret
	other, err := jwt.GenerateAccessToken(7, "user@example.com", "Ama Mensah",
		string(domain.RoleMember), domain.MemberActive, "wrong-secret", 15)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	resp, err = app.Test(requestWithToken(other))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("wrong secret: status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthMiddlewareAcceptsCookieToken(t *testing.T) {
	cfg := testJWTConfig()
	app := guardedApp(cfg, AnyAuthenticated)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{
		Name:  "access_token",
		Value: tokenFor(t, cfg, string(domain.RoleMember), domain.MemberActive),
	})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("cookie token: status = %d, want 200", resp.StatusCode)
	}
}

func TestGuardEnforcesRoles(t *testing.T) {
	cfg := testJWTConfig()

	tests := []struct {
		name   string
		policy Policy
		role   string
		status string
		want   int
	}{
		{"member allowed on member route", MemberAny, string(domain.RoleMember), domain.MemberPending, http.StatusOK},
		{"member blocked on staff route", StaffOnly, string(domain.RoleMember), domain.MemberActive, http.StatusForbidden},
		{"accountant allowed on staff route", StaffOnly, string(domain.RoleAccountant), domain.MemberActive, http.StatusOK},
		{"accountant blocked on president route", PresidentOnly, string(domain.RoleAccountant), domain.MemberActive, http.StatusForbidden},
		{"president allowed on president route", PresidentOnly, string(domain.RolePresident), domain.MemberActive, http.StatusOK},
		{"pending member blocked on active route", ActiveMember, string(domain.RoleMember), domain.MemberPending, http.StatusForbidden},
		{"active member allowed on active route", ActiveMember, string(domain.RoleMember), domain.MemberActive, http.StatusOK},
		{"president blocked on member route", MemberAny, string(domain.RolePresident), domain.MemberActive, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := guardedApp(cfg, tt.policy)
			resp, err := app.Test(requestWithToken(tokenFor(t, cfg, tt.role, tt.status)))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}
