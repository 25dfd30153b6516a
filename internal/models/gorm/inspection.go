package gorm

import "time"

// InspectionChecklist is a driver's pre-trip checklist submission.
// Items holds the per-item results as a JSON document; Signature is the
// data-URL of the captured signature image.
type InspectionChecklist struct {
	ID         string    `gorm:"column:id;primaryKey;type:uuid"`
	VehicleID  string    `gorm:"column:vehicle_id;type:uuid;index"`
	OperatorID string    `gorm:"column:operator_id;type:uuid"`
	Date       time.Time `gorm:"column:date"`
	Odometer   int64     `gorm:"column:odometer"`
	Items      string    `gorm:"column:items;type:jsonb;default:'[]'"`
	Signature  string    `gorm:"column:signature;type:text"`
	Notes      string    `gorm:"column:notes"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (InspectionChecklist) TableName() string {
	return "inspection_checklists"
}
