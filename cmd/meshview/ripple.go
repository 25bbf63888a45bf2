package main

import gomath "math"

// rippleHeights writes base positions into verts with a radial sine wave
// added to Y. Both slices hold xyz triples and must be the same length.
func rippleHeights(verts, base []float32, t, amplitude float32) {
	for i := 0; i+2 < len(base); i += 3 {
		x, z := base[i], base[i+2]
		r := float32(gomath.Sqrt(float64(x*x + z*z)))
		verts[i] = x
		verts[i+1] = base[i+1] + amplitude*float32(gomath.Sin(float64(r*2-t*3)))
		verts[i+2] = z
	}
}
