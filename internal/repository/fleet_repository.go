package repository

import (
	"context"

	"github.com/perera99-msd/coach-service-app/internal/model/entity"
	"gorm.io/gorm"
)

// FleetRepository 司机与车辆仓库（核心逻辑只读）
type FleetRepository struct {
	db *gorm.DB
}

// NewFleetRepository 创建司机与车辆仓库
func NewFleetRepository(db *gorm.DB) *FleetRepository {
	return &FleetRepository{db: db}
}

// ListDrivers 获取司机列表
func (r *FleetRepository) ListDrivers(ctx context.Context) ([]entity.Driver, error) {
	var drivers []entity.Driver
	err := r.db.WithContext(ctx).Order("name ASC").Find(&drivers).Error
	return drivers, err
}

// ListVehicles 获取车辆列表
func (r *FleetRepository) ListVehicles(ctx context.Context) ([]entity.Vehicle, error) {
	var vehicles []entity.Vehicle
	err := r.db.WithContext(ctx).Order("plate ASC").Find(&vehicles).Error
	return vehicles, err
}
