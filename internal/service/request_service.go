package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/perera99-msd/coach-service-app/internal/model/entity"
	"github.com/perera99-msd/coach-service-app/internal/repository"
	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RequestService 行程请求生命周期服务
type RequestService struct {
	requests    *repository.RequestRepository
	assignments *repository.AssignmentRepository
	notifier    Notifier
	logger      *zap.Logger
}

// NewRequestService 创建行程请求服务
func NewRequestService(requests *repository.RequestRepository, assignments *repository.AssignmentRepository, notifier Notifier, logger *zap.Logger) *RequestService {
	return &RequestService{
		requests:    requests,
		assignments: assignments,
		notifier:    notifier,
		logger:      logger,
	}
}

// CreateRequestInput 创建行程请求参数
type CreateRequestInput struct {
	CustomerName    string    `json:"customer_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	PickupLocation  string    `json:"pickup_location"`
	DropoffLocation string    `json:"dropoff_location"`
	PickupTime      time.Time `json:"pickup_time"`
	Passengers      int       `json:"passengers"`
	Notes           string    `json:"notes"`
}

// UpdateStatusInput 更新状态参数
type UpdateStatusInput struct {
	Status        string     `json:"status"`
	DriverID      *uint      `json:"driver_id"`
	VehicleID     *uint      `json:"vehicle_id"`
	ScheduledTime *time.Time `json:"scheduled_time"`
}

// RequestListResult 行程请求列表结果
type RequestListResult struct {
	Items      []entity.ServiceRequest
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// Create validates and persists a new request with status pending, then
// dispatches the welcome notification in the background. All missing required
// fields are collected before the email format is checked.
func (s *RequestService) Create(ctx context.Context, in *CreateRequestInput) (uint, error) {
	var missing []string
	if in.CustomerName == "" {
		missing = append(missing, "customer_name")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.Phone == "" {
		missing = append(missing, "phone")
	}
	if in.PickupLocation == "" {
		missing = append(missing, "pickup_location")
	}
	if in.DropoffLocation == "" {
		missing = append(missing, "dropoff_location")
	}
	if in.PickupTime.IsZero() {
		missing = append(missing, "pickup_time")
	}
	if in.Passengers <= 0 {
		missing = append(missing, "passengers")
	}
	if len(missing) > 0 {
		return 0, missingFieldsError(missing)
	}

	if !emailPattern.MatchString(in.Email) {
		return 0, invalidEmailError()
	}

	req := &entity.ServiceRequest{
		CustomerName:    in.CustomerName,
		Email:           in.Email,
		Phone:           in.Phone,
		PickupLocation:  in.PickupLocation,
		DropoffLocation: in.DropoffLocation,
		PickupTime:      in.PickupTime,
		Passengers:      in.Passengers,
		Notes:           in.Notes,
		Status:          entity.StatusPending,
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	go func(email, name string, id uint) {
		if err := s.notifier.SendWelcome(context.Background(), email, name, id); err != nil {
			s.logger.Warn("Welcome notification failed",
				zap.Uint("request_id", id),
				zap.Error(err),
			)
		}
	}(req.Email, req.CustomerName, req.ID)

	return req.ID, nil
}

// Get 获取单个行程请求（含排班详情）
func (s *RequestService) Get(ctx context.Context, id uint) (*entity.ServiceRequest, error) {
	return s.requests.FindWithAssignment(ctx, id)
}

// List 搜索行程请求
func (s *RequestService) List(ctx context.Context, filter repository.RequestFilter) (*RequestListResult, error) {
	filter.Normalize()
	items, total, err := s.requests.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	if items == nil {
		items = []entity.ServiceRequest{}
	}

	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit > 0 {
		totalPages++
	}

	return &RequestListResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

// FindByPhone 客户按电话查询自己的请求
func (s *RequestService) FindByPhone(ctx context.Context, phone string) ([]entity.ServiceRequest, error) {
	items, err := s.requests.FindByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("find by phone: %w", err)
	}
	if items == nil {
		items = []entity.ServiceRequest{}
	}
	return items, nil
}

// FindByEmail 客户按邮箱查询自己的请求
func (s *RequestService) FindByEmail(ctx context.Context, email string) ([]entity.ServiceRequest, error) {
	items, err := s.requests.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find by email: %w", err)
	}
	if items == nil {
		items = []entity.ServiceRequest{}
	}
	return items, nil
}

// UpdateStatus applies a status change and, when scheduling with a complete
// driver/vehicle/time triple, upserts the request's single assignment. No
// transition graph is enforced: any status may follow any other, and moving a
// scheduled request back to pending leaves its assignment attached.
func (s *RequestService) UpdateStatus(ctx context.Context, id uint, in *UpdateStatusInput) error {
	if !entity.ValidStatus(in.Status) {
		return invalidStatusError()
	}

	if err := s.requests.UpdateStatus(ctx, id, in.Status); err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	if in.Status == entity.StatusScheduled && in.DriverID != nil && in.VehicleID != nil && in.ScheduledTime != nil {
		a := &entity.Assignment{
			RequestID:     id,
			DriverID:      *in.DriverID,
			VehicleID:     *in.VehicleID,
			ScheduledTime: *in.ScheduledTime,
		}
		if err := s.assignments.Upsert(ctx, a); err != nil {
			return fmt.Errorf("upsert assignment: %w", err)
		}
	}

	switch in.Status {
	case entity.StatusApproved, entity.StatusRejected, entity.StatusScheduled:
		s.notifyStatus(ctx, id, in.Status)
	}

	return nil
}

// notifyStatus looks up the customer and dispatches a best-effort status
// notification. Lookup and send failures are logged, never surfaced.
func (s *RequestService) notifyStatus(ctx context.Context, id uint, status string) {
	req, err := s.requests.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("Status notification lookup failed",
			zap.Uint("request_id", id),
			zap.Error(err),
		)
		return
	}
	if req.Email == "" {
		return
	}

	go func(email, name string, id uint) {
		if err := s.notifier.SendStatusUpdate(context.Background(), email, name, status, id); err != nil {
			s.logger.Warn("Status notification failed",
				zap.Uint("request_id", id),
				zap.String("status", status),
				zap.Error(err),
			)
		}
	}(req.Email, req.CustomerName, req.ID)
}

// Delete removes the request and cascades to its assignment. The cascade is
// best-effort: a request without an assignment deletes cleanly.
func (s *RequestService) Delete(ctx context.Context, id uint) error {
	if err := s.requests.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.assignments.DeleteByRequestID(ctx, id); err != nil {
		s.logger.Warn("Assignment cascade delete failed",
			zap.Uint("request_id", id),
			zap.Error(err),
		)
	}
	return nil
}
