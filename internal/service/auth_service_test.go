package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/perera99-msd/coach-service-app/internal/config"
	"github.com/perera99-msd/coach-service-app/internal/middleware"
)

func setupAuthTest() *AuthService {
	return NewAuthService(
		config.AdminConfig{Username: "admin", Password: "admin123"},
		config.JWTConfig{Secret: "test-secret", TokenExpire: time.Hour, Issuer: "coach-service"},
	)
}

func TestAuthLoginIssuesCoordinatorToken(t *testing.T) {
	svc := setupAuthTest()

	result, err := svc.Login("admin", "admin123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if result.User.Username != "admin" || result.User.Role != RoleCoordinator {
		t.Errorf("Unexpected user payload: %+v", result.User)
	}

	claims := &middleware.Claims{}
	token, err := jwt.ParseWithClaims(result.Token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("Token does not verify: %v", err)
	}
	if claims.Role != RoleCoordinator {
		t.Errorf("Expected coordinator role claim, got %s", claims.Role)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) > time.Hour+time.Minute {
		t.Errorf("Unexpected expiry: %v", claims.ExpiresAt)
	}
}

func TestAuthLoginRejectsBadCredentials(t *testing.T) {
	svc := setupAuthTest()

	cases := []struct{ user, pass string }{
		{"admin", "wrong"},
		{"root", "admin123"},
		{"", ""},
	}
	for _, c := range cases {
		if _, err := svc.Login(c.user, c.pass); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login(%q, %q): expected ErrInvalidCredentials, got %v", c.user, c.pass, err)
		}
	}
}
