package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/perera99-msd/coach-service-app/internal/service"
	"go.uber.org/zap"
)

// FleetHandler 司机与车辆处理器
type FleetHandler struct {
	svc    *service.FleetService
	logger *zap.Logger
}

// NewFleetHandler 创建司机与车辆处理器
func NewFleetHandler(svc *service.FleetService, logger *zap.Logger) *FleetHandler {
	return &FleetHandler{svc: svc, logger: logger}
}

// ListDrivers 获取司机列表
func (h *FleetHandler) ListDrivers(c *gin.Context) {
	drivers, err := h.svc.ListDrivers(c.Request.Context())
	if err != nil {
		internalError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

// ListVehicles 获取车辆列表
func (h *FleetHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.svc.ListVehicles(c.Request.Context())
	if err != nil {
		internalError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}
