package entity

import (
	"time"
)

// Assignment binds a scheduled request to a driver, a vehicle and a time.
// The unique index on request_id is what makes the scheduling upsert atomic:
// at most one assignment may exist per request, concurrent schedulers included.
type Assignment struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	RequestID     uint      `json:"request_id" gorm:"not null;uniqueIndex"`
	DriverID      uint      `json:"driver_id" gorm:"not null"`
	VehicleID     uint      `json:"vehicle_id" gorm:"not null"`
	ScheduledTime time.Time `json:"scheduled_time" gorm:"not null"`

	// 关联
	Request *ServiceRequest `json:"request,omitempty" gorm:"foreignKey:RequestID"`
	Driver  *Driver         `json:"driver,omitempty" gorm:"foreignKey:DriverID"`
	Vehicle *Vehicle        `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
}

func (Assignment) TableName() string {
	return "assignments"
}
