package pattern

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go-lumen/geom"
)

const tau = 2 * math.Pi

// HelixConfig holds the fixed geometry of one coiled strand. All
// lengths are in the same units as the fixture's point positions.
type HelixConfig struct {
	Axis   geom.Axis
	Pitch  float64       // axial distance per full coil turn
	Radius float64       // distance of the coil centerline from the axis
	Girth  float64       // thickness of the visible tube
	Phase  float64       // initial rotation, radians
	Period time.Duration // time per full turn; 0 disables animation
}

// Helix is one animated strand wound around an axis. Geometry is fixed
// at construction; only the phase mutates, via Step.
type Helix struct {
	cfg        HelixConfig
	baseNormal geom.Vec3 // perpendicular to the axis, radius length, at phase zero
	phase      float64
}

// NewHelix validates the config and derives the strand's reference
// normal. Degenerate geometry is rejected here so the per-frame math
// never divides by zero.
func NewHelix(cfg HelixConfig) (*Helix, error) {
	if cfg.Radius <= 0 {
		return nil, fmt.Errorf("helix radius must be positive, got %v", cfg.Radius)
	}
	if cfg.Girth <= 0 {
		return nil, fmt.Errorf("helix girth must be positive, got %v", cfg.Girth)
	}
	if cfg.Pitch == 0 {
		return nil, errors.New("helix pitch must be non-zero")
	}
	base, err := referenceNormal(cfg.Axis, cfg.Radius)
	if err != nil {
		return nil, err
	}
	return &Helix{
		cfg:        cfg,
		baseNormal: base,
		phase:      wrapAngle(cfg.Phase),
	}, nil
}

// referenceNormal derives a deterministic axis-perpendicular starting
// normal: cross the direction with the first candidate vector not
// colinear with it, scaled to radius length. The candidates span two
// independent directions, so one always works.
func referenceNormal(axis geom.Axis, radius float64) (geom.Vec3, error) {
	candidates := []geom.Vec3{{Y: 1}, {Z: 1}, {Y: 1, Z: 1}}
	for _, ref := range candidates {
		n, err := axis.Direction().Cross(ref).Normalize()
		if err == nil {
			return n.Scale(radius), nil
		}
	}
	return geom.Vec3{}, errors.New("no reference normal for axis")
}

// Step advances the coil's rotation by the elapsed frame time. The
// phase is rewrapped into [0,2π) each step so it never accumulates
// floating-point error over long runs.
func (h *Helix) Step(elapsed time.Duration) {
	if h.cfg.Period == 0 {
		return
	}
	h.phase = wrapAngle(h.phase + elapsed.Seconds()/h.cfg.Period.Seconds()*tau)
}

// Phase returns the current rotational offset in radians.
func (h *Helix) Phase() float64 { return h.phase }

// Normal returns the current reference normal: perpendicular to the
// axis direction, radius length, rotated by the current phase.
func (h *Helix) Normal() geom.Vec3 {
	return h.baseNormal.RotateAround(h.cfg.Axis.Direction(), h.phase)
}

// ToroidalPointAt returns the coil centerline point at axial parameter
// t: the axis point offset by the reference normal, swept around the
// axis by the coil's winding angle at t.
func (h *Helix) ToroidalPointAt(t float64) geom.Vec3 {
	lifted := h.cfg.Axis.PointAt(t).Add(h.Normal())
	return h.cfg.Axis.Rotate(lifted, t/h.cfg.Pitch*tau)
}

// ColorAt computes the strand's contribution at p: a soft-edged tube of
// width Girth around the coil centerline. Brightness falls off linearly
// from full at half girth to zero at girth; saturation drops outside
// the tube; hue tracks the ambient base shifted by the current phase.
func (h *Helix) ColorAt(p geom.Vec3, baseHue float64) Color {
	t := h.cfg.Axis.ParamOf(p)
	d := p.Distance(h.ToroidalPointAt(t))

	half := h.cfg.Girth / 2
	v := clamp(100*(1-(d-half)/half), 0, 100)

	s := 0.0
	if d < h.cfg.Girth {
		s = 80
	}

	hue := math.Mod(baseHue+360*(h.phase/tau), 360)
	if hue < 0 {
		hue += 360
	}
	return Color{H: hue, S: s, V: v}
}

func wrapAngle(a float64) float64 {
	a = math.Mod(a, tau)
	if a < 0 {
		a += tau
	}
	return a
}
