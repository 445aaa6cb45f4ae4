package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		wantKm                 float64
		tolerance              float64
	}{
		{
			name: "same point",
			lat1: 48.8566, lon1: 2.3522,
			lat2: 48.8566, lon2: 2.3522,
			wantKm:    0,
			tolerance: 0.001,
		},
		{
			name: "Paris to Lyon",
			lat1: 48.8566, lon1: 2.3522,
			lat2: 45.7640, lon2: 4.8357,
			wantKm:    392,
			tolerance: 2,
		},
		{
			name: "Paris to Marseille",
			lat1: 48.8566, lon1: 2.3522,
			lat2: 43.2965, lon2: 5.3698,
			wantKm:    661,
			tolerance: 3,
		},
		{
			name: "across the equator",
			lat1: 1.0, lon1: 0.0,
			lat2: -1.0, lon2: 0.0,
			wantKm:    222.4,
			tolerance: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.wantKm, got, tt.tolerance)
		})
	}
}

func TestDistanceSymmetry(t *testing.T) {
	d1 := Distance(48.8566, 2.3522, 45.7640, 4.8357)
	d2 := Distance(45.7640, 4.8357, 48.8566, 2.3522)
	assert.InDelta(t, d1, d2, 1e-9)
}
