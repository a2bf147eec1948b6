// Package testutil provides the shared plumbing for the test suites: an
// isolated in-memory database, a preconfigured router and coordinator
// tokens. No external daemon is needed to run the tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/perera99-msd/coach-service-app/internal/middleware"
	"github.com/perera99-msd/coach-service-app/internal/model/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const JWTSecret = "coach-service-test-secret"

// TestEnv bundles the pieces a handler test needs.
type TestEnv struct {
	DB     *gorm.DB
	Router *gin.Engine
	T      *testing.T
}

// SetupTestDB opens a private in-memory sqlite database and migrates the
// schema. A single connection is kept so concurrent writers serialize at the
// pool instead of tripping sqlite's lock errors.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&entity.ServiceRequest{},
		&entity.Driver{},
		&entity.Vehicle{},
		&entity.Assignment{},
	); err != nil {
		t.Fatalf("Failed to migrate test tables: %v", err)
	}

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

// SetupRouter creates a gin test router.
func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	return r
}

// AuthGroup creates an API group guarded by the JWT middleware.
func AuthGroup(r *gin.Engine, path string) *gin.RouterGroup {
	return r.Group(path, middleware.JWTAuth(JWTSecret))
}

// CoordinatorToken returns a valid coordinator token.
func CoordinatorToken() string {
	now := time.Now()
	claims := middleware.Claims{
		Username: "admin",
		Role:     "coordinator",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			Issuer:    "coach-service",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, _ := token.SignedString([]byte(JWTSecret))
	return signed
}

// DoRequest executes an HTTP request against the test router.
func DoRequest(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ParseResponse parses the JSON response body into a map.
func ParseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

// SeedRequest creates a request row. A non-zero createdAt is kept as given so
// tests can control the analytics buckets and list ordering.
func SeedRequest(t *testing.T, db *gorm.DB, name, email, phone, status string, createdAt time.Time) *entity.ServiceRequest {
	t.Helper()
	req := &entity.ServiceRequest{
		CustomerName:    name,
		Email:           email,
		Phone:           phone,
		PickupLocation:  "Central Station",
		DropoffLocation: "Airport",
		PickupTime:      time.Now().Add(48 * time.Hour),
		Passengers:      2,
		Status:          status,
		CreatedAt:       createdAt,
	}
	if err := db.Create(req).Error; err != nil {
		t.Fatalf("Failed to seed request: %v", err)
	}
	return req
}

// SeedDriver creates a driver row.
func SeedDriver(t *testing.T, db *gorm.DB, name, phone string) *entity.Driver {
	t.Helper()
	d := &entity.Driver{Name: name, Phone: phone}
	if err := db.Create(d).Error; err != nil {
		t.Fatalf("Failed to seed driver: %v", err)
	}
	return d
}

// SeedVehicle creates a vehicle row.
func SeedVehicle(t *testing.T, db *gorm.DB, plate string, capacity int) *entity.Vehicle {
	t.Helper()
	v := &entity.Vehicle{Plate: plate, Capacity: capacity}
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("Failed to seed vehicle: %v", err)
	}
	return v
}
