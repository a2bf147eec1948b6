package entity

// Driver 司机（只读参照数据）
type Driver struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:128;not null"`
	Phone string `json:"phone" gorm:"size:32;not null"`
}

func (Driver) TableName() string {
	return "drivers"
}

// Vehicle 车辆（只读参照数据）
type Vehicle struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Plate    string `json:"plate" gorm:"size:32;not null;uniqueIndex"`
	Capacity int    `json:"capacity" gorm:"not null"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
