package geom

import (
	"math"
	"testing"
)

func mustAxis(t *testing.T, origin, dir Vec3) Axis {
	t.Helper()
	a, err := NewAxis(origin, dir)
	if err != nil {
		t.Fatalf("NewAxis(%+v, %+v): %v", origin, dir, err)
	}
	return a
}

func TestNewAxisNormalizes(t *testing.T) {
	a := mustAxis(t, Vec3{1, 2, 3}, Vec3{0, 0, 5})
	if !vecApprox(a.Direction(), Vec3{0, 0, 1}) {
		t.Errorf("direction = %+v, want unit z", a.Direction())
	}
	if !approx(a.Direction().Length(), 1) {
		t.Errorf("direction length = %v, want 1", a.Direction().Length())
	}
}

func TestNewAxisRejectsZeroDirection(t *testing.T) {
	if _, err := NewAxis(Vec3{}, Vec3{}); err == nil {
		t.Fatal("expected error for zero direction")
	}
}

func TestParamPointRoundTrip(t *testing.T) {
	a := mustAxis(t, Vec3{100, 50, 70}, Vec3{1, 2, -1})

	for _, tc := range []float64{-42.5, -1, 0, 0.001, 3, 700} {
		got := a.ParamOf(a.PointAt(tc))
		if !approx(got, tc) {
			t.Errorf("ParamOf(PointAt(%v)) = %v", tc, got)
		}
	}
}

func TestProjectLiesOnAxis(t *testing.T) {
	a := mustAxis(t, Vec3{-3, 8, 1}, Vec3{2, -1, 4})

	points := []Vec3{
		{0, 0, 0},
		{100, 50, 70},
		{-7, 3.5, 12},
	}
	for _, p := range points {
		proj := a.Project(p)
		if !a.Contains(proj) {
			t.Errorf("projection %+v of %+v not on axis", proj, p)
		}
		// The residual must be perpendicular to the axis
		if d := p.Sub(proj).Dot(a.Direction()); !approx(d, 0) {
			t.Errorf("residual not perpendicular: dot = %v", d)
		}
	}
}

func TestOriginProjectsToItself(t *testing.T) {
	a := mustAxis(t, Vec3{100, 50, 70}, Vec3{1, 0, 0})
	p := Vec3{100, 50, 70}

	if got := a.ParamOf(p); !approx(got, 0) {
		t.Errorf("ParamOf(origin) = %v, want 0", got)
	}
	if got := a.Project(p); !vecApprox(got, p) {
		t.Errorf("Project(origin) = %+v, want %+v", got, p)
	}
	if !a.Contains(p) {
		t.Error("Contains(origin) = false, want true")
	}
}

func TestAxisRotate(t *testing.T) {
	// Line parallel to z through (1,0,0)
	a := mustAxis(t, Vec3{1, 0, 0}, Vec3{0, 0, 1})

	t.Run("Identity", func(t *testing.T) {
		p := Vec3{5, -2, 3}
		if got := a.Rotate(p, 0); !vecApprox(got, p) {
			t.Errorf("Rotate(p, 0) = %+v, want %+v", got, p)
		}
	})

	t.Run("Pivot offset from world origin", func(t *testing.T) {
		// (2,0,0) is 1 unit from the line; a half turn lands at (0,0,0)
		got := a.Rotate(Vec3{2, 0, 0}, math.Pi)
		if !vecApprox(got, Vec3{0, 0, 0}) {
			t.Errorf("got %+v, want origin", got)
		}
	})

	t.Run("Inverse returns to start", func(t *testing.T) {
		p := Vec3{4, 7, -2}
		for _, angle := range []float64{0.1, math.Pi / 3, math.Pi, 5.5} {
			back := a.Rotate(a.Rotate(p, angle), -angle)
			if !vecApprox(back, p) {
				t.Errorf("angle %v: got %+v, want %+v", angle, back, p)
			}
		}
	})

	t.Run("Axis points unmoved", func(t *testing.T) {
		p := a.PointAt(3.7)
		if got := a.Rotate(p, 1.1); !vecApprox(got, p) {
			t.Errorf("axis point moved: %+v -> %+v", p, got)
		}
	})
}
