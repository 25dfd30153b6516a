package gorm

import (
	"time"

	"rodacerta/frotagest/internal/constants"
)

// Operator is a back-office user of the fleet console.
type Operator struct {
	ID           string                 `gorm:"column:id;primaryKey;type:uuid"`
	Name         string                 `gorm:"column:name"`
	Email        string                 `gorm:"column:email;uniqueIndex"`
	PasswordHash string                 `gorm:"column:password_hash"`
	Role         constants.OperatorRole `gorm:"column:role;type:operator_role"`
	IsActive     bool                   `gorm:"column:is_active;default:true"`
	CreatedAt    time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Operator) TableName() string {
	return "operators"
}
