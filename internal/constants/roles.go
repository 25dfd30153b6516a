package constants

import (
	"database/sql/driver"
	"fmt"
)

// OperatorRole mirrors the Postgres ENUM 'operator_role'
type OperatorRole string

const (
	RoleOperator OperatorRole = "operator"
	RoleManager  OperatorRole = "manager"
	RoleAdmin    OperatorRole = "admin"
)

// Stringer ­– convenient for fmt / logs
func (r OperatorRole) String() string { return string(r) }

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *OperatorRole) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = OperatorRole(v)
	case []byte:
		*r = OperatorRole(v)
	default:
		return fmt.Errorf("OperatorRole: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r OperatorRole) Value() (driver.Value, error) { return string(r), nil }
