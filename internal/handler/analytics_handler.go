package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/perera99-msd/coach-service-app/internal/service"
	"go.uber.org/zap"
)

// AnalyticsHandler 统计处理器
type AnalyticsHandler struct {
	svc    *service.AnalyticsService
	logger *zap.Logger
}

// NewAnalyticsHandler 创建统计处理器
func NewAnalyticsHandler(svc *service.AnalyticsService, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, logger: logger}
}

// Daily 最近7天每日新建请求数
func (h *AnalyticsHandler) Daily(c *gin.Context) {
	counts, err := h.svc.Daily(c.Request.Context())
	if err != nil {
		internalError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}
