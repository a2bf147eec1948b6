package service

import (
	"context"
	"fmt"

	"github.com/perera99-msd/coach-service-app/internal/model/entity"
	"github.com/perera99-msd/coach-service-app/internal/repository"
)

// FleetService 司机与车辆查询服务
type FleetService struct {
	fleet *repository.FleetRepository
}

// NewFleetService 创建司机与车辆查询服务
func NewFleetService(fleet *repository.FleetRepository) *FleetService {
	return &FleetService{fleet: fleet}
}

// ListDrivers 获取司机列表
func (s *FleetService) ListDrivers(ctx context.Context) ([]entity.Driver, error) {
	drivers, err := s.fleet.ListDrivers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	if drivers == nil {
		drivers = []entity.Driver{}
	}
	return drivers, nil
}

// ListVehicles 获取车辆列表
func (s *FleetService) ListVehicles(ctx context.Context) ([]entity.Vehicle, error) {
	vehicles, err := s.fleet.ListVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	if vehicles == nil {
		vehicles = []entity.Vehicle{}
	}
	return vehicles, nil
}
