package fixture

import (
	"testing"

	"go-lumen/geom"
)

func TestGridLayout(t *testing.T) {
	l := Grid(8, 8, 20)

	if got := l.Count(); got != 64 {
		t.Errorf("Count = %d, want 64", got)
	}
	if got := l.Index(0, 0, 0); got != 0 {
		t.Errorf("Index(0,0,0) = %d, want 0", got)
	}
	if got := l.Index(7, 7, 0); got != 63 {
		t.Errorf("Index(7,7,0) = %d, want 63", got)
	}
	if got := l.Index(3, 2, 0); got != 19 {
		t.Errorf("Index(3,2,0) = %d, want 19", got)
	}
}

func TestStripLayout(t *testing.T) {
	l := Strip(30, 16.6)

	if got := l.Count(); got != 30 {
		t.Errorf("Count = %d, want 30", got)
	}
	pts := l.Points()
	if len(pts) != 30 {
		t.Fatalf("len(Points) = %d, want 30", len(pts))
	}
	if pts[0] != (geom.Vec3{}) {
		t.Errorf("first point = %+v, want origin", pts[0])
	}
	want := geom.Vec3{X: 29 * 16.6}
	if pts[29].Distance(want) > 1e-9 {
		t.Errorf("last point = %+v, want %+v", pts[29], want)
	}
}

func TestSerpentineIndex(t *testing.T) {
	l := Layout{
		Dim:   Dim{X: 4, Y: 4, Z: 1},
		Order: Serpentine{XFlipEveryRow: true},
		Pitch: 10,
	}

	tests := []struct {
		name    string
		x, y, z int
		want    int
	}{
		{"Even row keeps order", 0, 0, 0, 0},
		{"Even row end", 3, 0, 0, 3},
		{"Odd row reverses", 0, 1, 0, 7},
		{"Odd row end", 3, 1, 0, 4},
		{"Second even row", 2, 2, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Index(tt.x, tt.y, tt.z); got != tt.want {
				t.Errorf("Index(%d,%d,%d) = %d, want %d", tt.x, tt.y, tt.z, got, tt.want)
			}
		})
	}
}

func TestPanelFlipIndex(t *testing.T) {
	l := Layout{
		Dim:   Dim{X: 2, Y: 2, Z: 2},
		Order: Serpentine{YFlipEveryPanel: true},
		Pitch: 10,
	}

	// Panel 0 keeps row order, panel 1 flips it
	if got := l.Index(0, 0, 0); got != 0 {
		t.Errorf("Index(0,0,0) = %d, want 0", got)
	}
	if got := l.Index(0, 0, 1); got != 6 {
		t.Errorf("Index(0,0,1) = %d, want 6", got)
	}
	if got := l.Index(0, 1, 1); got != 4 {
		t.Errorf("Index(0,1,1) = %d, want 4", got)
	}
}

func TestPointsMatchIndexOrder(t *testing.T) {
	l := Layout{
		Dim:   Dim{X: 3, Y: 2, Z: 2},
		Order: Serpentine{XFlipEveryRow: true},
		Pitch: 5,
	}
	pts := l.Points()

	if len(pts) != l.Count() {
		t.Fatalf("len(Points) = %d, want %d", len(pts), l.Count())
	}

	for z := 0; z < l.Dim.Z; z++ {
		for y := 0; y < l.Dim.Y; y++ {
			for x := 0; x < l.Dim.X; x++ {
				want := geom.Vec3{X: float64(x) * 5, Y: float64(y) * 5, Z: float64(z) * 5}
				got := pts[l.Index(x, y, z)]
				if got != want {
					t.Errorf("LED (%d,%d,%d): got %+v, want %+v", x, y, z, got, want)
				}
			}
		}
	}
}

func TestCenter(t *testing.T) {
	l := Grid(8, 8, 20)
	want := geom.Vec3{X: 70, Y: 70, Z: 0}
	if got := l.Center(); got != want {
		t.Errorf("Center = %+v, want %+v", got, want)
	}
}
