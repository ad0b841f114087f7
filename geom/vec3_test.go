package geom

import (
	"math"
	"testing"
)

const tol = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < tol
}

func vecApprox(a, b Vec3) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

func TestVec3Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"Add", Vec3{1, 2, 3}.Add(Vec3{4, 5, 6}), Vec3{5, 7, 9}},
		{"Sub", Vec3{4, 5, 6}.Sub(Vec3{1, 2, 3}), Vec3{3, 3, 3}},
		{"Scale", Vec3{1, -2, 3}.Scale(2), Vec3{2, -4, 6}},
		{"Scale by zero", Vec3{1, 2, 3}.Scale(0), Vec3{}},
		{"Cross unit x y", Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0}), Vec3{0, 0, 1}},
		{"Cross anticommutes", Vec3{0, 1, 0}.Cross(Vec3{1, 0, 0}), Vec3{0, 0, -1}},
		{"Cross parallel", Vec3{2, 0, 0}.Cross(Vec3{5, 0, 0}), Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecApprox(tt.got, tt.want) {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestVec3DotLength(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"Dot", Vec3{1, 2, 3}.Dot(Vec3{4, -5, 6}), 12},
		{"Dot orthogonal", Vec3{1, 0, 0}.Dot(Vec3{0, 1, 0}), 0},
		{"Length", Vec3{3, 4, 0}.Length(), 5},
		{"Length zero", Vec3{}.Length(), 0},
		{"Distance", Vec3{1, 1, 1}.Distance(Vec3{1, 1, 6}), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !approx(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestVec3Normalize(t *testing.T) {
	v, err := Vec3{0, 3, 4}.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !vecApprox(v, Vec3{0, 0.6, 0.8}) {
		t.Errorf("got %+v, want {0 0.6 0.8}", v)
	}
	if !approx(v.Length(), 1) {
		t.Errorf("normalized length = %v, want 1", v.Length())
	}

	if _, err := (Vec3{}).Normalize(); err != ErrZeroVector {
		t.Errorf("zero vector: got err %v, want ErrZeroVector", err)
	}
}

func TestVec3RotateAround(t *testing.T) {
	z := Vec3{0, 0, 1}

	tests := []struct {
		name  string
		v     Vec3
		axis  Vec3
		angle float64
		want  Vec3
	}{
		{"Quarter turn about z", Vec3{1, 0, 0}, z, math.Pi / 2, Vec3{0, 1, 0}},
		{"Half turn about z", Vec3{1, 0, 0}, z, math.Pi, Vec3{-1, 0, 0}},
		{"Full turn about z", Vec3{1, 2, 3}, z, 2 * math.Pi, Vec3{1, 2, 3}},
		{"Axis point is fixed", Vec3{0, 0, 5}, z, 1.3, Vec3{0, 0, 5}},
		{"Zero angle", Vec3{4, -2, 7}, z, 0, Vec3{4, -2, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.RotateAround(tt.axis, tt.angle)
			if !vecApprox(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
