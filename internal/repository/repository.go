package repository

import (
	"errors"

	"gorm.io/gorm"
)

// 错误定义
var (
	ErrNotFound = errors.New("record not found")
)

// Repositories 仓库集合
type Repositories struct {
	Request    *RequestRepository
	Assignment *AssignmentRepository
	Fleet      *FleetRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Request:    NewRequestRepository(db),
		Assignment: NewAssignmentRepository(db),
		Fleet:      NewFleetRepository(db),
	}
}
