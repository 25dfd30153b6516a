package dtos

import (
	"time"

	"rodacerta/frotagest/internal/models/entities"
)

// ErrorPayload is the structured validation/conflict error handed to the
// UI: a machine-checkable code plus the offending field and a message.
type ErrorPayload struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// SlotView is one wheel position card: its code and the mounted tire,
// nil when the slot is empty.
type SlotView struct {
	Position string         `json:"position"`
	Tire     *entities.Tire `json:"tire"`
}

// AxleView groups the slots presented together on one row.
type AxleView struct {
	Label string     `json:"label"`
	Slots []SlotView `json:"slots"`
}

// TireMapResponse is the per-vehicle tire set in layout order, returned
// after every successful engine operation so the UI can re-render without
// a full reload.
type TireMapResponse struct {
	VehicleID string                    `json:"vehicle_id"`
	Plate     string                    `json:"plate"`
	Type      entities.VehicleType      `json:"type"`
	Axles     []AxleView                `json:"axles"`
	Positions map[string]*entities.Tire `json:"positions"`
}

// MonthlyConsumption is one row of the consumption report chart.
type MonthlyConsumption struct {
	Month      time.Month `json:"month"`
	Liters     float64    `json:"liters"`
	Spend      float64    `json:"spend"`
	KmRun      int64      `json:"km_run"`
	KmPerLiter float64    `json:"km_per_liter"`
}

// VehicleConsumption is the year of monthly rows for one vehicle.
type VehicleConsumption struct {
	VehicleID string               `json:"vehicle_id"`
	Plate     string               `json:"plate"`
	Year      int                  `json:"year"`
	Months    []MonthlyConsumption `json:"months"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
}

type OperatorView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}
