package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/perera99-msd/coach-service-app/internal/config"
	"github.com/perera99-msd/coach-service-app/internal/handler"
	"github.com/perera99-msd/coach-service-app/internal/middleware"
)

func registerRoutes(r *gin.Engine, h *handler.Handlers, cfg *config.Config) {
	api := r.Group("/api")

	// 健康检查
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// 公开路由：客户提交与状态查询
	api.POST("/requests", h.Request.Create)
	api.GET("/requests/phone/:phone", h.Request.ByPhone)
	api.GET("/requests/email/:email", h.Request.ByEmail)
	api.POST("/admin/login", h.Auth.Login)

	// 协调员路由
	auth := api.Group("", middleware.JWTAuth(cfg.JWT.Secret))
	auth.GET("/requests", h.Request.List)
	auth.GET("/requests/:id", h.Request.Get)
	auth.PATCH("/requests/:id", h.Request.UpdateStatus)
	auth.DELETE("/requests/:id", h.Request.Delete)

	auth.GET("/assignments", h.Assignment.List)
	auth.PATCH("/assignments/:id", h.Assignment.Update)
	auth.DELETE("/assignments/:id", h.Assignment.Delete)

	auth.GET("/analytics/daily", h.Analytics.Daily)

	auth.GET("/drivers", h.Fleet.ListDrivers)
	auth.GET("/vehicles", h.Fleet.ListVehicles)
}
