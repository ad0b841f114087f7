package geom

import (
	"errors"
	"math"
)

// Vec3 is a point or direction in 3D space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Distance returns the distance to another point.
func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Length()
}

// ErrZeroVector is returned when a direction has no usable magnitude.
var ErrZeroVector = errors.New("geom: zero-length vector")

// Normalize returns the unit vector pointing the same way.
func (v Vec3) Normalize() (Vec3, error) {
	l := v.Length()
	if l == 0 {
		return Vec3{}, ErrZeroVector
	}
	return v.Scale(1 / l), nil
}

// RotateAround rotates v about the unit vector k by angle radians,
// right-hand rule. Rodrigues' formula:
//
//	v' = v cosθ + (k×v) sinθ + k (k·v)(1−cosθ)
//
// k must be unit length.
func (v Vec3) RotateAround(k Vec3, angle float64) Vec3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return v.Scale(cos).
		Add(k.Cross(v).Scale(sin)).
		Add(k.Scale(k.Dot(v) * (1 - cos)))
}
