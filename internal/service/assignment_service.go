package service

import (
	"context"
	"fmt"
	"time"

	"github.com/perera99-msd/coach-service-app/internal/model/entity"
	"github.com/perera99-msd/coach-service-app/internal/repository"
)

// AssignmentService 排班管理服务
type AssignmentService struct {
	assignments *repository.AssignmentRepository
}

// NewAssignmentService 创建排班管理服务
func NewAssignmentService(assignments *repository.AssignmentRepository) *AssignmentService {
	return &AssignmentService{assignments: assignments}
}

// UpdateAssignmentInput 排班部分更新参数
type UpdateAssignmentInput struct {
	DriverID      *uint      `json:"driver_id"`
	VehicleID     *uint      `json:"vehicle_id"`
	ScheduledTime *time.Time `json:"scheduled_time"`
}

// AssignmentListResult 排班列表结果
type AssignmentListResult struct {
	Items      []entity.Assignment
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// List 获取排班列表（按排班时间倒序）
func (s *AssignmentService) List(ctx context.Context, page, limit int) (*AssignmentListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	items, total, err := s.assignments.List(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	if items == nil {
		items = []entity.Assignment{}
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	return &AssignmentListResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// Update applies a partial edit; only supplied fields change. Rejects a body
// with no recognised fields, and reports ErrNotFound for an unknown id.
// Editing an assignment never touches the owning request's status.
func (s *AssignmentService) Update(ctx context.Context, id uint, in *UpdateAssignmentInput) error {
	updates := map[string]interface{}{}
	if in.DriverID != nil {
		updates["driver_id"] = *in.DriverID
	}
	if in.VehicleID != nil {
		updates["vehicle_id"] = *in.VehicleID
	}
	if in.ScheduledTime != nil {
		updates["scheduled_time"] = *in.ScheduledTime
	}
	if len(updates) == 0 {
		return noFieldsError()
	}

	return s.assignments.Update(ctx, id, updates)
}

// Delete 删除排班（不影响所属请求的状态）
func (s *AssignmentService) Delete(ctx context.Context, id uint) error {
	return s.assignments.Delete(ctx, id)
}
