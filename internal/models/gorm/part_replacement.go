package gorm

import "time"

// PartReplacement records a part swapped on a vehicle.
type PartReplacement struct {
	ID            string    `gorm:"column:id;primaryKey;type:uuid"`
	VehicleID     string    `gorm:"column:vehicle_id;type:uuid;index"`
	PartName      string    `gorm:"column:part_name"`
	Supplier      string    `gorm:"column:supplier"`
	InvoiceNumber string    `gorm:"column:invoice_number"`
	Odometer      int64     `gorm:"column:odometer"`
	Cost          float64   `gorm:"column:cost"`
	Date          time.Time `gorm:"column:date"`
	Notes         string    `gorm:"column:notes"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (PartReplacement) TableName() string {
	return "part_replacements"
}
