package fixture

import "go-lumen/geom"

// Dim is a fixture's grid extents in LEDs.
type Dim struct {
	X, Y, Z int
}

// Serpentine controls zig-zag wiring order: many LED arrays reverse
// direction on alternating rows or panels to shorten the data run.
type Serpentine struct {
	XFlipEveryRow   bool
	YFlipEveryPanel bool
}

// Layout describes the physical arrangement of an LED array: grid
// extents, wiring order, and the spacing between adjacent LEDs (in the
// same units as the pattern geometry).
type Layout struct {
	Dim   Dim
	Order Serpentine
	Pitch float64
}

// Grid returns a single-panel rows x cols layout wired row by row.
func Grid(rows, cols int, pitch float64) Layout {
	return Layout{Dim: Dim{X: cols, Y: rows, Z: 1}, Pitch: pitch}
}

// Strip returns an n-LED linear run along the X axis.
func Strip(n int, pitch float64) Layout {
	return Layout{Dim: Dim{X: n, Y: 1, Z: 1}, Pitch: pitch}
}

// Count returns the total number of LEDs.
func (l Layout) Count() int {
	return l.Dim.X * l.Dim.Y * l.Dim.Z
}

// Index maps grid coordinates to the linear LED index, honoring the
// serpentine wiring order.
func (l Layout) Index(x, y, z int) int {
	xx := x
	yy := y
	if y%2 == 1 && l.Order.XFlipEveryRow {
		xx = l.Dim.X - 1 - x
	}
	if z%2 == 1 && l.Order.YFlipEveryPanel {
		yy = l.Dim.Y - 1 - y
	}
	perPanel := l.Dim.X * l.Dim.Y
	return z*perPanel + yy*l.Dim.X + xx
}

// Points returns the 3D position of every LED, ordered by linear index.
// This is the read-only point buffer handed to the pattern driver each
// frame.
func (l Layout) Points() []geom.Vec3 {
	pts := make([]geom.Vec3, l.Count())
	for z := 0; z < l.Dim.Z; z++ {
		for y := 0; y < l.Dim.Y; y++ {
			for x := 0; x < l.Dim.X; x++ {
				pts[l.Index(x, y, z)] = geom.Vec3{
					X: float64(x) * l.Pitch,
					Y: float64(y) * l.Pitch,
					Z: float64(z) * l.Pitch,
				}
			}
		}
	}
	return pts
}

// Center returns the geometric center of the array, a convenient
// anchor for pattern axes.
func (l Layout) Center() geom.Vec3 {
	return geom.Vec3{
		X: float64(l.Dim.X-1) * l.Pitch / 2,
		Y: float64(l.Dim.Y-1) * l.Pitch / 2,
		Z: float64(l.Dim.Z-1) * l.Pitch / 2,
	}
}
