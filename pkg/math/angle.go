package math

import "math"

const (
	// Deg2Rad converts degrees to radians.
	Deg2Rad = float32(math.Pi / 180.0)
	// Rad2Deg converts radians to degrees.
	Rad2Deg = float32(180.0 / math.Pi)
)

// Radian is an angle in radians.
type Radian float32

// Degree is an angle in degrees.
type Degree float32

// Degrees converts r to degrees.
func (r Radian) Degrees() Degree {
	return Degree(float32(r) * Rad2Deg)
}

// Radians converts d to radians.
func (d Degree) Radians() Radian {
	return Radian(float32(d) * Deg2Rad)
}
