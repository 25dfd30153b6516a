package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rodacerta/frotagest/internal/models/entities"
)

func TestLayoutForKnownTypes(t *testing.T) {
	tests := []struct {
		vehicleType entities.VehicleType
		axles       int
		positions   []string
	}{
		{entities.VehiclePassenger, 3, []string{"1E", "1D", "2E", "2D", "E"}},
		{entities.VehicleDelivery, 3, []string{"1E", "1D", "2E", "2D", "E"}},
		{entities.VehicleThreeQuarter, 3, []string{"1E", "1D", "2EE", "2EI", "2DI", "2DE", "E"}},
		{entities.VehicleToco, 3, []string{"1E", "1D", "2EE", "2EI", "2DI", "2DE", "E"}},
		{entities.VehicleTruck, 4, []string{"1E", "1D", "2EE", "2EI", "2DI", "2DE", "3EE", "3EI", "3DI", "3DE", "E"}},
		{entities.VehicleBitruck, 5, []string{"1E", "1D", "2E", "2D", "3EE", "3EI", "3DI", "3DE", "4EE", "4EI", "4DI", "4DE", "E"}},
		{entities.VehicleTractorHead, 4, []string{"1E", "1D", "2EE", "2EI", "2DI", "2DE", "3EE", "3EI", "3DI", "3DE", "E"}},
		{entities.VehicleSemiBitrain, 3, []string{"1EE", "1EI", "1DI", "1DE", "2EE", "2EI", "2DI", "2DE", "E"}},
		{entities.VehicleSemiRodo, 4, []string{"1EE", "1EI", "1DI", "1DE", "2EE", "2EI", "2DI", "2DE", "3EE", "3EI", "3DI", "3DE", "E"}},
	}

	for _, tc := range tests {
		t.Run(string(tc.vehicleType), func(t *testing.T) {
			l := LayoutFor(tc.vehicleType)
			require.Len(t, l, tc.axles)
			assert.Equal(t, tc.positions, Positions(tc.vehicleType))
		})
	}
}

func TestLayoutForUnknownTypeIsEmpty(t *testing.T) {
	assert.Empty(t, LayoutFor("hovercraft"))
	assert.Empty(t, Positions("hovercraft"))
	assert.False(t, HasPosition("hovercraft", "1E"))
}

func TestEveryTypeHasExactlyOneSpare(t *testing.T) {
	for _, vt := range entities.AllVehicleTypes {
		spares := 0
		for _, code := range Positions(vt) {
			if code == "E" {
				spares++
			}
		}
		assert.Equal(t, 1, spares, "type %s", vt)
	}
}

func TestPositionCodesUniqueWithinType(t *testing.T) {
	for _, vt := range entities.AllVehicleTypes {
		seen := map[string]bool{}
		for _, code := range Positions(vt) {
			assert.False(t, seen[code], "duplicate %s in %s", code, vt)
			seen[code] = true
		}
	}
}

func TestHasPosition(t *testing.T) {
	assert.True(t, HasPosition(entities.VehicleTruck, "2DI"))
	assert.True(t, HasPosition(entities.VehicleTruck, "E"))
	assert.False(t, HasPosition(entities.VehicleTruck, "4DI"))
	assert.False(t, HasPosition(entities.VehicleDelivery, "2DI"))
}
