package service

import (
	"github.com/perera99-msd/coach-service-app/internal/config"
	"github.com/perera99-msd/coach-service-app/internal/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Services 服务集合
type Services struct {
	Auth       *AuthService
	Request    *RequestService
	Assignment *AssignmentService
	Analytics  *AnalyticsService
	Fleet      *FleetService
}

// NewServices 创建服务集合
func NewServices(repos *repository.Repositories, rdb *redis.Client, cfg *config.Config, notifier Notifier, logger *zap.Logger) *Services {
	return &Services{
		Auth:       NewAuthService(cfg.Admin, cfg.JWT),
		Request:    NewRequestService(repos.Request, repos.Assignment, notifier, logger),
		Assignment: NewAssignmentService(repos.Assignment),
		Analytics:  NewAnalyticsService(repos.Request, rdb, logger),
		Fleet:      NewFleetService(repos.Fleet),
	}
}
