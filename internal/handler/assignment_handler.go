package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/perera99-msd/coach-service-app/internal/repository"
	"github.com/perera99-msd/coach-service-app/internal/service"
	"go.uber.org/zap"
)

// AssignmentHandler 排班处理器
type AssignmentHandler struct {
	svc    *service.AssignmentService
	logger *zap.Logger
}

// NewAssignmentHandler 创建排班处理器
func NewAssignmentHandler(svc *service.AssignmentService, logger *zap.Logger) *AssignmentHandler {
	return &AssignmentHandler{svc: svc, logger: logger}
}

// List 获取排班列表
func (h *AssignmentHandler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context(), queryInt(c, "page", 1), queryInt(c, "limit", 10))
	if err != nil {
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assignments": result.Items,
		"pagination": Pagination{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	})
}

// Update 部分更新排班
func (h *AssignmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in service.UpdateAssignmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.svc.Update(c.Request.Context(), id, &in); err != nil {
		if Validation(c, err) {
			return
		}
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Assignment not found")
			return
		}
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Assignment updated successfully"})
}

// Delete 删除排班
func (h *AssignmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Assignment not found")
			return
		}
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Assignment deleted successfully"})
}
