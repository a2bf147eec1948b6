package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/perera99-msd/coach-service-app/internal/config"
	"github.com/perera99-msd/coach-service-app/internal/service"
	"github.com/perera99-msd/coach-service-app/internal/testutil"
)

func setupAuthHandlerTest(t *testing.T) *gin.Engine {
	t.Helper()
	router := testutil.SetupRouter()

	svc := service.NewAuthService(
		config.AdminConfig{Username: "admin", Password: "admin123"},
		config.JWTConfig{Secret: testutil.JWTSecret, Issuer: "coach-service"},
	)
	handler := NewAuthHandler(svc)
	router.POST("/api/admin/login", handler.Login)

	return router
}

func TestAdminLoginSuccess(t *testing.T) {
	router := setupAuthHandlerTest(t)

	w := testutil.DoRequest(router, "POST", "/api/admin/login",
		map[string]interface{}{"username": "admin", "password": "admin123"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	token, ok := resp["token"].(string)
	if !ok || token == "" {
		t.Fatal("Expected a token in the response")
	}
	user := resp["user"].(map[string]interface{})
	if user["username"] != "admin" || user["role"] != "coordinator" {
		t.Errorf("Unexpected user payload: %v", user)
	}
}

func TestAdminLoginIssuedTokenPassesMiddleware(t *testing.T) {
	router := setupAuthHandlerTest(t)

	auth := testutil.AuthGroup(router, "/api")
	auth.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": c.GetString("username")})
	})

	w := testutil.DoRequest(router, "POST", "/api/admin/login",
		map[string]interface{}{"username": "admin", "password": "admin123"}, "")
	token := testutil.ParseResponse(w)["token"].(string)

	w = testutil.DoRequest(router, "GET", "/api/ping", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected issued token to pass, got %d: %s", w.Code, w.Body.String())
	}
	if testutil.ParseResponse(w)["user"] != "admin" {
		t.Errorf("Expected username claim propagated, got %s", w.Body.String())
	}
}

func TestAdminLoginRejectsWrongPassword(t *testing.T) {
	router := setupAuthHandlerTest(t)

	w := testutil.DoRequest(router, "POST", "/api/admin/login",
		map[string]interface{}{"username": "admin", "password": "nope"}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["message"] != "Invalid credentials" {
		t.Errorf("Unexpected message: %v", resp["message"])
	}
}
