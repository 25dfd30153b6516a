package gorm

import "time"

// FuelLog is one refueling event for a vehicle.
type FuelLog struct {
	ID            string    `gorm:"column:id;primaryKey;type:uuid"`
	VehicleID     string    `gorm:"column:vehicle_id;type:uuid;index"`
	OperatorID    *string   `gorm:"column:operator_id;type:uuid"`
	Date          time.Time `gorm:"column:date"`
	Odometer      int64     `gorm:"column:odometer"`
	Liters        float64   `gorm:"column:liters"`
	PricePerLiter float64   `gorm:"column:price_per_liter"`
	Total         float64   `gorm:"column:total"`
	FuelType      string    `gorm:"column:fuel_type"`
	Station       string    `gorm:"column:station"`
	FullTank      bool      `gorm:"column:full_tank;default:true"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (FuelLog) TableName() string {
	return "fuel_logs"
}
