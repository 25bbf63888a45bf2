package lighting

import (
	"testing"

	"github.com/Faultbox/midgard-geom/pkg/math"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name     string
		az, el   math.Degree
		expected math.Vec3
	}{
		{"zenith", 0, 90, math.Vec3{X: 0, Y: 1, Z: 0}},
		{"south horizon", 0, 0, math.Vec3{X: 0, Y: 0, Z: 1}},
		{"east horizon", 90, 0, math.Vec3{X: 1, Y: 0, Z: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SunDirection(tt.az, tt.el)
			if got.Sub(tt.expected).Length() > 1e-5 {
				t.Errorf("SunDirection(%v, %v) = %v, want %v", tt.az, tt.el, got, tt.expected)
			}
			if l := got.Length(); l < 0.9999 || l > 1.0001 {
				t.Errorf("length = %v, want 1", l)
			}
		})
	}
}

func TestLightDirectionPointsDown(t *testing.T) {
	if d := LightDirection(30, 45); d.Y >= 0 {
		t.Errorf("LightDirection Y = %v, want negative", d.Y)
	}
}
