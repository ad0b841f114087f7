package geom

import "fmt"

// Tolerance for the on-axis test. Exact equality gives false negatives
// after any rotation has passed through the trig functions.
const onAxisEpsilon = 1e-9

// Axis is an infinite directed line: an origin plus a unit direction.
// Immutable once built.
type Axis struct {
	origin Vec3
	dir    Vec3
}

// NewAxis builds an axis through origin pointing along direction.
// The direction is normalized; a zero-length direction is rejected.
func NewAxis(origin, direction Vec3) (Axis, error) {
	dir, err := direction.Normalize()
	if err != nil {
		return Axis{}, fmt.Errorf("axis direction: %w", err)
	}
	return Axis{origin: origin, dir: dir}, nil
}

// Origin returns the axis origin point.
func (a Axis) Origin() Vec3 { return a.origin }

// Direction returns the unit direction vector.
func (a Axis) Direction() Vec3 { return a.dir }

// PointAt returns the point at signed distance t from the origin.
func (a Axis) PointAt(t float64) Vec3 {
	return a.origin.Add(a.dir.Scale(t))
}

// ParamOf returns the signed axial distance of p's projection, i.e. the
// t for which PointAt(t) is the closest axis point to p.
func (a Axis) ParamOf(p Vec3) float64 {
	return p.Sub(a.origin).Dot(a.dir)
}

// Project returns the closest point on the axis to p.
func (a Axis) Project(p Vec3) Vec3 {
	return a.PointAt(a.ParamOf(p))
}

// Contains reports whether p lies on the axis, within tolerance.
func (a Axis) Contains(p Vec3) bool {
	return a.Project(p).Distance(p) < onAxisEpsilon
}

// Rotate rotates p about the axis line by angle radians, right-hand
// rule about the direction vector. The line need not pass through the
// world origin: p is translated so it does, rotated, and translated
// back.
func (a Axis) Rotate(p Vec3, angle float64) Vec3 {
	return p.Sub(a.origin).RotateAround(a.dir, angle).Add(a.origin)
}
