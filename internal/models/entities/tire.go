package entities

import "time"

// TireStatus is the closed set of lifecycle states a tire can be in.
// Exactly one holds at any time; transitions between them are governed
// by the lifecycle machine in internal/tire.
type TireStatus string

const (
	TireInStock  TireStatus = "in_stock"
	TireInUse    TireStatus = "in_use"
	TireInRecap  TireStatus = "in_recapping"
	TireScrapped TireStatus = "scrapped"
)

// AllTireStatuses lists every valid status, in lifecycle order.
var AllTireStatuses = []TireStatus{TireInStock, TireInUse, TireInRecap, TireScrapped}

// ParseTireStatus validates a raw status string.
func ParseTireStatus(s string) (TireStatus, bool) {
	for _, st := range AllTireStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

type Tire struct {
	ID           string `db:"id" json:"id"`
	Serial       string `db:"serial" json:"serial"`
	Manufacturer string `db:"manufacturer" json:"manufacturer"`
	Model        string `db:"model" json:"model"`
	// Tread pattern as manufactured and after the latest recap.
	OriginalTread string `db:"original_tread" json:"original_tread"`
	CurrentTread  string `db:"current_tread" json:"current_tread"`
	Dimension     string `db:"dimension" json:"dimension"`
	Grooves       int    `db:"grooves" json:"grooves"`
	Plies         int    `db:"plies" json:"plies"`
	DOTCode       string `db:"dot_code" json:"dot_code"`

	ExpiresAt *time.Time `db:"expires_at" json:"expires_at,omitempty"`

	InitialReading int64  `db:"initial_reading" json:"initial_reading"`
	FinalReading   *int64 `db:"final_reading" json:"final_reading,omitempty"`
	RecapCount     int    `db:"recap_count" json:"recap_count"`

	Supplier      string     `db:"supplier" json:"supplier"`
	InvoiceNumber string     `db:"invoice_number" json:"invoice_number"`
	InvoiceSeries string     `db:"invoice_series" json:"invoice_series"`
	PurchasedAt   *time.Time `db:"purchased_at" json:"purchased_at,omitempty"`
	Cost          float64    `db:"cost" json:"cost"`
	Freight       float64    `db:"freight" json:"freight"`
	Incidentals   float64    `db:"incidentals" json:"incidentals"`

	Status TireStatus `db:"status" json:"status"`

	// Both are set iff Status == TireInUse.
	VehicleID    *string `db:"vehicle_id" json:"vehicle_id,omitempty"`
	PositionCode *string `db:"position_code" json:"position_code,omitempty"`

	// Optimistic concurrency token, bumped on every write.
	Version   int64     `db:"version" json:"version"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// DistanceRun returns final minus initial reading, clamped to zero.
// A negative difference means a data-entry error, not a valid state.
func (t *Tire) DistanceRun() int64 {
	if t.FinalReading == nil {
		return 0
	}
	d := *t.FinalReading - t.InitialReading
	if d < 0 {
		return 0
	}
	return d
}

// Life is the 1-based ordinal of the tire's current life
// (1st life before any recap, 2nd after the first, and so on).
func (t *Tire) Life() int {
	return t.RecapCount + 1
}

// Mounted reports whether the tire is currently bound to a vehicle position.
func (t *Tire) Mounted() bool {
	return t.Status == TireInUse && t.VehicleID != nil && t.PositionCode != nil
}
