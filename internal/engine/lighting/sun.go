// Package lighting provides lighting utilities for 3D rendering.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/midgard-geom/pkg/math"
)

// SunDirection converts azimuth/elevation angles to a light direction vector.
// Azimuth is rotation around the Y axis, elevation is the angle above the horizon.
// Returns a normalized direction vector pointing towards the sun.
func SunDirection(azimuth, elevation math.Degree) math.Vec3 {
	az := float64(azimuth.Radians())
	el := float64(elevation.Radians())

	return math.Vec3{
		X: float32(gomath.Cos(el) * gomath.Sin(az)),
		Y: float32(gomath.Sin(el)),
		Z: float32(gomath.Cos(el) * gomath.Cos(az)),
	}
}

// LightDirection is the direction light travels, from the sun towards the scene.
func LightDirection(azimuth, elevation math.Degree) math.Vec3 {
	return SunDirection(azimuth, elevation).Scale(-1)
}
