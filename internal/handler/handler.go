package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/perera99-msd/coach-service-app/internal/service"
	"go.uber.org/zap"
)

// Handlers 处理器集合
type Handlers struct {
	Auth       *AuthHandler
	Request    *RequestHandler
	Assignment *AssignmentHandler
	Analytics  *AnalyticsHandler
	Fleet      *FleetHandler
}

// NewHandlers 创建处理器集合
func NewHandlers(svc *service.Services, logger *zap.Logger) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(svc.Auth),
		Request:    NewRequestHandler(svc.Request, logger),
		Assignment: NewAssignmentHandler(svc.Assignment, logger),
		Analytics:  NewAnalyticsHandler(svc.Analytics, logger),
		Fleet:      NewFleetHandler(svc.Fleet, logger),
	}
}

// Pagination 分页信息
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NotFound 资源不存在响应
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"message": message})
}

// BadRequest 参数错误响应
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

// Validation writes a 400 response when err is a service.ValidationError;
// reports whether it handled the error. Missing field names ride along in
// the errors array.
func Validation(c *gin.Context, err error) bool {
	var ve *service.ValidationError
	if !errors.As(err, &ve) {
		return false
	}
	body := gin.H{"message": ve.Message}
	if len(ve.Fields) > 0 {
		body["errors"] = ve.Fields
	}
	c.JSON(http.StatusBadRequest, body)
	return true
}

// internalError hides storage detail behind a generic body; the detail is
// logged, not exposed.
func internalError(c *gin.Context, logger *zap.Logger, err error) {
	logger.Error("Database error",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
}

// parseID 解析路径中的数字ID
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// queryInt 解析查询参数中的整数
func queryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return v
}
