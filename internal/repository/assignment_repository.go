package repository

import (
	"context"
	"errors"

	"github.com/perera99-msd/coach-service-app/internal/model/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssignmentRepository 排班仓库
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository 创建排班仓库
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Upsert inserts the assignment, or updates driver/vehicle/time in place when
// one already exists for the same request. A single statement resolved by the
// unique index on request_id — never a read followed by a write, so two
// schedulers racing on the same request cannot both insert.
func (r *AssignmentRepository) Upsert(ctx context.Context, a *entity.Assignment) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "request_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"driver_id", "vehicle_id", "scheduled_time"}),
		}).
		Create(a).Error
}

// FindByID 根据ID查找排班
func (r *AssignmentRepository) FindByID(ctx context.Context, id uint) (*entity.Assignment, error) {
	var a entity.Assignment
	err := r.db.WithContext(ctx).First(&a, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindByRequestID returns the assignment attached to a request, or ErrNotFound.
func (r *AssignmentRepository) FindByRequestID(ctx context.Context, requestID uint) (*entity.Assignment, error) {
	var a entity.Assignment
	err := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// List 获取排班列表（含请求、司机、车辆）
func (r *AssignmentRepository) List(ctx context.Context, page, limit int) ([]entity.Assignment, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var assignments []entity.Assignment
	var total int64

	if err := r.db.WithContext(ctx).Model(&entity.Assignment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Request").
		Preload("Driver").
		Preload("Vehicle").
		Order("scheduled_time DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&assignments).Error

	return assignments, total, err
}

// Update applies a partial update. Only keys present in updates are modified.
func (r *AssignmentRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Assignment{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete 删除排班
func (r *AssignmentRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Assignment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByRequestID removes any assignment attached to the request. Deleting
// when none exists is not an error — this is the cascade path of a request
// deletion.
func (r *AssignmentRepository) DeleteByRequestID(ctx context.Context, requestID uint) error {
	return r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Delete(&entity.Assignment{}).Error
}
