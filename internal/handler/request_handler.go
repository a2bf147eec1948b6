package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/perera99-msd/coach-service-app/internal/repository"
	"github.com/perera99-msd/coach-service-app/internal/service"
	"go.uber.org/zap"
)

// RequestHandler 行程请求处理器
type RequestHandler struct {
	svc    *service.RequestService
	logger *zap.Logger
}

// NewRequestHandler 创建行程请求处理器
func NewRequestHandler(svc *service.RequestService, logger *zap.Logger) *RequestHandler {
	return &RequestHandler{svc: svc, logger: logger}
}

// Create 客户提交行程请求
func (h *RequestHandler) Create(c *gin.Context) {
	var in service.CreateRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	id, err := h.svc.Create(c.Request.Context(), &in)
	if err != nil {
		if Validation(c, err) {
			return
		}
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Trip request submitted successfully",
		"id":      id,
	})
}

// List 分页搜索行程请求
func (h *RequestHandler) List(c *gin.Context) {
	filter := repository.RequestFilter{
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 10),
		Search: c.Query("search"),
		Status: c.Query("status"),
	}

	result, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests": result.Items,
		"pagination": Pagination{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	})
}

// Get 获取单个行程请求（含排班详情）
func (h *RequestHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	req, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Request not found")
			return
		}
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, req)
}

// UpdateStatus 更新请求状态（排班时一并写入assignment）
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in service.UpdateStatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.svc.UpdateStatus(c.Request.Context(), id, &in); err != nil {
		if Validation(c, err) {
			return
		}
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request updated successfully"})
}

// Delete 删除行程请求（级联删除排班）
func (h *RequestHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Request not found")
			return
		}
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request deleted successfully"})
}

// ByPhone 客户按电话查询请求状态（公开）
func (h *RequestHandler) ByPhone(c *gin.Context) {
	requests, err := h.svc.FindByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		internalError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// ByEmail 客户按邮箱查询请求状态（公开）
func (h *RequestHandler) ByEmail(c *gin.Context) {
	requests, err := h.svc.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		internalError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}
