// Package layout holds the static vehicle-type → wheel-position catalog.
//
// Position codes follow the fleet convention: a leading axle number, then
// E (esquerdo, left) or D (direito, right), and for dual wheels a trailing
// I (inner) or E (outer). The bare code "E" is the spare (estepe).
// Adding a vehicle type is a data change here, never a code change.
package layout

import "rodacerta/frotagest/internal/models/entities"

// Axle groups the positions presented together on one row of the UI.
type Axle struct {
	Label     string   `json:"label"`
	Positions []string `json:"positions"`
}

// Layout is the ordered axle list for one vehicle type.
type Layout []Axle

var catalog = map[entities.VehicleType]Layout{
	entities.VehiclePassenger: {
		{Label: "1st axle (front)", Positions: []string{"1E", "1D"}},
		{Label: "2nd axle (rear)", Positions: []string{"2E", "2D"}},
		{Label: "Spare", Positions: []string{"E"}},
	},
	entities.VehicleDelivery: {
		{Label: "1st axle (front)", Positions: []string{"1E", "1D"}},
		{Label: "2nd axle (rear)", Positions: []string{"2E", "2D"}},
		{Label: "Spare", Positions: []string{"E"}},
	},
	entities.VehicleThreeQuarter: {
		{Label: "1st axle (front)", Positions: []string{"1E", "1D"}},
		{Label: "2nd axle (rear, dual)", Positions: []string{"2EE", "2EI", "2DI", "2DE"}},
		{Label: "Spare", Positions: []string{"E"}},
	},
	entities.VehicleToco: {
		{Label: "1st axle (front)", Positions: []string{"1E", "1D"}},
		{Label: "2nd axle (rear, dual)", Positions: []string{"2EE", "2EI", "2DI", "2DE"}},
		{Label: "Spare", Positions: []string{"E"}},
	},
	entities.VehicleTruck: {
		{Label: "1st axle (front)", Positions: []string{"1E", "1D"}},
		{Label: "2nd axle (rear, dual)", Positions: []string{"2EE", "2EI", "2DI", "2DE"}},
		{Label: "3rd axle (rear, dual)", Positions: []string{"3EE", "3EI", "3DI", "3DE"}},
		{Label: "Spare", Positions: []string{"E"}},
	},
	entities.VehicleBitruck: {
		{Label: "1st axle (front)", Positions: []string{"1E", "1D"}},
		{Label: "2nd axle (front)", Positions: []string{"2E", "2D"}},
		{Label: "3rd axle (rear, dual)", Positions: []string{"3EE", "3EI", "3DI", "3DE"}},
		{Label: "4th axle (rear, dual)", Positions: []string{"4EE", "4EI", "4DI", "4DE"}},
		{Label: "Spare", Positions: []string{"E"}},
	},
	entities.VehicleTractorHead: {
		{Label: "1st axle (front)", Positions: []string{"1E", "1D"}},
		{Label: "2nd axle (drive, dual)", Positions: []string{"2EE", "2EI", "2DI", "2DE"}},
		{Label: "3rd axle (drive, dual)", Positions: []string{"3EE", "3EI", "3DI", "3DE"}},
		{Label: "Spare", Positions: []string{"E"}},
	},
	entities.VehicleSemiBitrain: {
		{Label: "1st axle (dual)", Positions: []string{"1EE", "1EI", "1DI", "1DE"}},
		{Label: "2nd axle (dual)", Positions: []string{"2EE", "2EI", "2DI", "2DE"}},
		{Label: "Spare", Positions: []string{"E"}},
	},
	entities.VehicleSemiRodo: {
		{Label: "1st axle (dual)", Positions: []string{"1EE", "1EI", "1DI", "1DE"}},
		{Label: "2nd axle (dual)", Positions: []string{"2EE", "2EI", "2DI", "2DE"}},
		{Label: "3rd axle (dual)", Positions: []string{"3EE", "3EI", "3DI", "3DE"}},
		{Label: "Spare", Positions: []string{"E"}},
	},
}

// LayoutFor returns the ordered axle/slot list for a vehicle type.
// Unknown types yield an empty layout; callers must treat that as
// "no layout defined" rather than proceeding as if slots exist.
func LayoutFor(t entities.VehicleType) Layout {
	return catalog[t]
}

// Positions returns the flattened, ordered position-code list for a type.
func Positions(t entities.VehicleType) []string {
	var codes []string
	for _, axle := range catalog[t] {
		codes = append(codes, axle.Positions...)
	}
	return codes
}

// HasPosition reports whether code is a valid slot for the given type.
func HasPosition(t entities.VehicleType, code string) bool {
	for _, axle := range catalog[t] {
		for _, p := range axle.Positions {
			if p == code {
				return true
			}
		}
	}
	return false
}
