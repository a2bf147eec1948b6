package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/perera99-msd/coach-service-app/internal/model/entity"
	"github.com/perera99-msd/coach-service-app/internal/repository"
	"github.com/perera99-msd/coach-service-app/internal/service"
	"github.com/perera99-msd/coach-service-app/internal/testutil"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// noopNotifier satisfies service.Notifier for handler tests; delivery paths
// are covered by the service tests.
type noopNotifier struct{}

func (noopNotifier) SendWelcome(ctx context.Context, email, name string, requestID uint) error {
	return nil
}

func (noopNotifier) SendStatusUpdate(ctx context.Context, email, name, status string, requestID uint) error {
	return nil
}

func setupRequestHandlerTest(t *testing.T) (*testutil.TestEnv, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter()

	repos := repository.NewRepositories(db)
	logger := zap.NewNop()
	svc := service.NewRequestService(repos.Request, repos.Assignment, noopNotifier{}, logger)
	handler := NewRequestHandler(svc, logger)

	api := router.Group("/api")
	api.POST("/requests", handler.Create)
	api.GET("/requests/phone/:phone", handler.ByPhone)
	api.GET("/requests/email/:email", handler.ByEmail)

	auth := testutil.AuthGroup(router, "/api")
	auth.GET("/requests", handler.List)
	auth.GET("/requests/:id", handler.Get)
	auth.PATCH("/requests/:id", handler.UpdateStatus)
	auth.DELETE("/requests/:id", handler.Delete)

	return &testutil.TestEnv{DB: db, Router: router, T: t}, db
}

func requestBody() map[string]interface{} {
	return map[string]interface{}{
		"customer_name":    "Alice Walker",
		"email":            "alice@example.com",
		"phone":            "111-2222",
		"pickup_location":  "Central Station",
		"dropoff_location": "Airport",
		"pickup_time":      time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"passengers":       3,
	}
}

func TestRequestCreateEndpoint(t *testing.T) {
	env, db := setupRequestHandlerTest(t)

	w := testutil.DoRequest(env.Router, "POST", "/api/requests", requestBody(), "")
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["message"] != "Trip request submitted successfully" {
		t.Errorf("Unexpected message: %v", resp["message"])
	}
	if _, ok := resp["id"]; !ok {
		t.Error("Expected an id in the response")
	}

	var count int64
	db.Model(&entity.ServiceRequest{}).Where("status = ?", "pending").Count(&count)
	if count != 1 {
		t.Errorf("Expected 1 pending request stored, got %d", count)
	}
}

func TestRequestCreateValidationErrors(t *testing.T) {
	env, _ := setupRequestHandlerTest(t)

	// All required fields missing
	w := testutil.DoRequest(env.Router, "POST", "/api/requests", map[string]interface{}{}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	fields, ok := resp["errors"].([]interface{})
	if !ok || len(fields) != 7 {
		t.Fatalf("Expected 7 missing fields listed, got %v", resp["errors"])
	}

	// Bad email format
	body := requestBody()
	body["email"] = "not-an-email"
	w = testutil.DoRequest(env.Router, "POST", "/api/requests", body, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
	resp = testutil.ParseResponse(w)
	if resp["message"] != "Invalid email address" {
		t.Errorf("Unexpected message: %v", resp["message"])
	}
}

func TestRequestListRequiresToken(t *testing.T) {
	env, _ := setupRequestHandlerTest(t)

	w := testutil.DoRequest(env.Router, "GET", "/api/requests", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 without token, got %d", w.Code)
	}

	w = testutil.DoRequest(env.Router, "GET", "/api/requests", nil, "not-a-jwt")
	if w.Code != http.StatusForbidden {
		t.Fatalf("Expected 403 with garbage token, got %d", w.Code)
	}
}

func TestRequestListSearchAndPagination(t *testing.T) {
	env, db := setupRequestHandlerTest(t)
	token := testutil.CoordinatorToken()

	testutil.SeedRequest(t, db, "Alice Walker", "alice@example.com", "111-2222", "pending", time.Time{})
	testutil.SeedRequest(t, db, "Bob Stone", "bob@example.com", "333-4444", "approved", time.Time{})
	testutil.SeedRequest(t, db, "Alice Cooper", "cooper@example.com", "555-6666", "approved", time.Time{})

	w := testutil.DoRequest(env.Router, "GET", "/api/requests?search=alice&status=approved", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	requests := resp["requests"].([]interface{})
	if len(requests) != 1 {
		t.Fatalf("Expected 1 approved alice, got %d", len(requests))
	}
	pagination := resp["pagination"].(map[string]interface{})
	if pagination["total"].(float64) != 1 {
		t.Errorf("Expected total 1, got %v", pagination["total"])
	}
	if pagination["totalPages"].(float64) != 1 {
		t.Errorf("Expected totalPages 1, got %v", pagination["totalPages"])
	}

	// Page size of 2 over 3 rows
	w = testutil.DoRequest(env.Router, "GET", "/api/requests?page=2&limit=2", nil, token)
	resp = testutil.ParseResponse(w)
	requests = resp["requests"].([]interface{})
	if len(requests) != 1 {
		t.Errorf("Expected 1 row on the last page, got %d", len(requests))
	}
	pagination = resp["pagination"].(map[string]interface{})
	if pagination["totalPages"].(float64) != 2 {
		t.Errorf("Expected totalPages 2, got %v", pagination["totalPages"])
	}
}

func TestRequestGetIncludesAssignment(t *testing.T) {
	env, db := setupRequestHandlerTest(t)
	token := testutil.CoordinatorToken()

	req := testutil.SeedRequest(t, db, "Carol Reed", "carol@example.com", "555-6666", "scheduled", time.Time{})
	driver := testutil.SeedDriver(t, db, "John Driver", "555-0001")
	vehicle := testutil.SeedVehicle(t, db, "ABC123", 4)
	db.Create(&entity.Assignment{
		RequestID: req.ID, DriverID: driver.ID, VehicleID: vehicle.ID,
		ScheduledTime: time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC),
	})

	w := testutil.DoRequest(env.Router, "GET", fmt.Sprintf("/api/requests/%d", req.ID), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	assignment, ok := resp["assignment"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected embedded assignment, got %v", resp["assignment"])
	}
	d, ok := assignment["driver"].(map[string]interface{})
	if !ok || d["name"] != "John Driver" {
		t.Errorf("Expected driver joined into assignment, got %v", assignment["driver"])
	}

	w = testutil.DoRequest(env.Router, "GET", "/api/requests/9999", nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 for missing request, got %d", w.Code)
	}
}

func TestRequestUpdateStatusEndpoint(t *testing.T) {
	env, db := setupRequestHandlerTest(t)
	token := testutil.CoordinatorToken()

	req := testutil.SeedRequest(t, db, "Dana Smith", "dana@example.com", "100-0001", "pending", time.Time{})
	driver := testutil.SeedDriver(t, db, "Jane Smith", "555-0002")
	vehicle := testutil.SeedVehicle(t, db, "XYZ789", 6)

	w := testutil.DoRequest(env.Router, "PATCH", fmt.Sprintf("/api/requests/%d", req.ID),
		map[string]interface{}{
			"status":         "scheduled",
			"driver_id":      driver.ID,
			"vehicle_id":     vehicle.ID,
			"scheduled_time": "2026-09-15T08:30:00Z",
		}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["message"] != "Request updated successfully" {
		t.Errorf("Unexpected message: %v", resp["message"])
	}

	var a entity.Assignment
	if err := env.DB.Where("request_id = ?", req.ID).First(&a).Error; err != nil {
		t.Fatalf("Assignment not written: %v", err)
	}

	// Unknown status is rejected
	w = testutil.DoRequest(env.Router, "PATCH", fmt.Sprintf("/api/requests/%d", req.ID),
		map[string]interface{}{"status": "cancelled"}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for bad status, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRequestDeleteEndpoint(t *testing.T) {
	env, db := setupRequestHandlerTest(t)
	token := testutil.CoordinatorToken()

	req := testutil.SeedRequest(t, db, "Eve Adams", "eve@example.com", "300-0000", "pending", time.Time{})

	w := testutil.DoRequest(env.Router, "DELETE", fmt.Sprintf("/api/requests/%d", req.ID), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(env.Router, "DELETE", fmt.Sprintf("/api/requests/%d", req.ID), nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 on second delete, got %d", w.Code)
	}
}

func TestRequestPublicLookupByPhoneAndEmail(t *testing.T) {
	env, db := setupRequestHandlerTest(t)

	testutil.SeedRequest(t, db, "Frank Low", "frank@example.com", "400-0000", "approved", time.Time{})

	w := testutil.DoRequest(env.Router, "GET", "/api/requests/phone/400-0000", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var byPhone []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &byPhone); err != nil || len(byPhone) != 1 {
		t.Fatalf("Expected 1 row by phone, got %v (%v)", byPhone, err)
	}

	w = testutil.DoRequest(env.Router, "GET", "/api/requests/email/FRANK@example.com", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var byEmail []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &byEmail); err != nil || len(byEmail) != 1 {
		t.Fatalf("Expected 1 row by email, got %v (%v)", byEmail, err)
	}

	// Unknown contact yields an empty array, not an error
	w = testutil.DoRequest(env.Router, "GET", "/api/requests/phone/999-9999", nil, "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("Expected empty array, got %d: %s", w.Code, w.Body.String())
	}
}
