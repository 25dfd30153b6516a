package entities

import "time"

// VehicleType is the fixed enumeration of fleet vehicle categories.
// The set of wheel positions a vehicle exposes is derived from its type
// through the layout catalog; it is never stored per vehicle.
type VehicleType string

const (
	VehiclePassenger    VehicleType = "passenger"
	VehicleDelivery     VehicleType = "delivery"
	VehicleThreeQuarter VehicleType = "three_quarter"
	VehicleToco         VehicleType = "toco"
	VehicleTruck        VehicleType = "truck"
	VehicleBitruck      VehicleType = "bitruck"
	VehicleTractorHead  VehicleType = "tractor_head"
	VehicleSemiBitrain  VehicleType = "semi_trailer_bitrain"
	VehicleSemiRodo     VehicleType = "semi_trailer_rodotrain"
)

// AllVehicleTypes lists the known types, front-axle count ascending.
var AllVehicleTypes = []VehicleType{
	VehiclePassenger,
	VehicleDelivery,
	VehicleThreeQuarter,
	VehicleToco,
	VehicleTruck,
	VehicleBitruck,
	VehicleTractorHead,
	VehicleSemiBitrain,
	VehicleSemiRodo,
}

// ParseVehicleType validates a raw type string.
func ParseVehicleType(s string) (VehicleType, bool) {
	for _, vt := range AllVehicleTypes {
		if string(vt) == s {
			return vt, true
		}
	}
	return "", false
}

type Vehicle struct {
	ID        string      `db:"id" json:"id"`
	Plate     string      `db:"plate" json:"plate"`
	Type      VehicleType `db:"type" json:"type"`
	Make      string      `db:"make" json:"make"`
	Model     string      `db:"model" json:"model"`
	Year      int         `db:"year" json:"year"`
	Color     string      `db:"color" json:"color"`
	Odometer  int64       `db:"odometer" json:"odometer"`
	Chassis   string      `db:"chassis" json:"chassis"`
	IsActive  bool        `db:"is_active" json:"is_active"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt time.Time   `db:"updated_at" json:"updated_at"`
}
