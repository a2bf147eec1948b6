package entity

import (
	"time"
)

// Request statuses. Creation always starts at StatusPending; any status may
// follow any other — the coordinator decides, no transition graph is enforced.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusScheduled = "scheduled"
)

// ValidStatus reports whether s is one of the four request statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusScheduled:
		return true
	}
	return false
}

// ServiceRequest 客户行程请求
type ServiceRequest struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	CreatedAt       time.Time `json:"created_at"`
	CustomerName    string    `json:"customer_name" gorm:"size:128;not null"`
	Email           string    `json:"email" gorm:"size:256;not null"`
	Phone           string    `json:"phone" gorm:"size:32;not null"`
	PickupLocation  string    `json:"pickup_location" gorm:"size:256;not null"`
	DropoffLocation string    `json:"dropoff_location" gorm:"size:256;not null"`
	PickupTime      time.Time `json:"pickup_time" gorm:"not null"`
	Passengers      int       `json:"passengers" gorm:"not null"`
	Notes           string    `json:"notes" gorm:"type:text"`
	Status          string    `json:"status" gorm:"size:16;not null;default:pending"`

	// 关联
	Assignment *Assignment `json:"assignment,omitempty" gorm:"foreignKey:RequestID"`
}

func (ServiceRequest) TableName() string {
	return "service_requests"
}
