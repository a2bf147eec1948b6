package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/perera99-msd/coach-service-app/internal/model/entity"
	"gorm.io/gorm"
)

// RequestFilter describes an optional search over the request list.
// Search matches customer_name, phone and email case-insensitively (OR);
// Status, when set and not "all", is an exact match combined with AND.
type RequestFilter struct {
	Page   int
	Limit  int
	Search string
	Status string
}

// Normalize applies the pagination defaults (page 1, limit 10).
func (f *RequestFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
}

// RequestRepository 行程请求仓库
type RequestRepository struct {
	db *gorm.DB
}

// NewRequestRepository 创建行程请求仓库
func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// Create 创建行程请求
func (r *RequestRepository) Create(ctx context.Context, req *entity.ServiceRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

// FindByID 根据ID查找行程请求
func (r *RequestRepository) FindByID(ctx context.Context, id uint) (*entity.ServiceRequest, error) {
	var req entity.ServiceRequest
	err := r.db.WithContext(ctx).First(&req, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

// FindWithAssignment loads a request together with its assignment and the
// assigned driver/vehicle, when one exists.
func (r *RequestRepository) FindWithAssignment(ctx context.Context, id uint) (*entity.ServiceRequest, error) {
	var req entity.ServiceRequest
	err := r.db.WithContext(ctx).
		Preload("Assignment").
		Preload("Assignment.Driver").
		Preload("Assignment.Vehicle").
		First(&req, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

// List 获取行程请求列表
func (r *RequestRepository) List(ctx context.Context, filter RequestFilter) ([]entity.ServiceRequest, int64, error) {
	filter.Normalize()

	var requests []entity.ServiceRequest
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ServiceRequest{})

	if filter.Search != "" {
		// LOWER(...) LIKE works on both sqlite and postgres; ILIKE does not.
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(customer_name) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.Status != "" && filter.Status != "all" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&requests).Error

	return requests, total, err
}

// FindByPhone 根据电话查询行程请求（公开状态查询）
func (r *RequestRepository) FindByPhone(ctx context.Context, phone string) ([]entity.ServiceRequest, error) {
	var requests []entity.ServiceRequest
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// FindByEmail 根据邮箱查询行程请求（公开状态查询）
func (r *RequestRepository) FindByEmail(ctx context.Context, email string) ([]entity.ServiceRequest, error) {
	var requests []entity.ServiceRequest
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// UpdateStatus sets the status field. Updating an id with no matching row is
// not an error: the PATCH acknowledgment does not depend on a match.
func (r *RequestRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&entity.ServiceRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete 删除行程请求
func (r *RequestRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.ServiceRequest{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CreatedAtSince returns the creation timestamps of all requests created at
// or after the given instant. Day bucketing happens in the caller so the
// query stays portable across drivers.
func (r *RequestRepository) CreatedAtSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	var stamps []time.Time
	err := r.db.WithContext(ctx).
		Model(&entity.ServiceRequest{}).
		Where("created_at >= ?", since).
		Pluck("created_at", &stamps).Error
	return stamps, err
}
