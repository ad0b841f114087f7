package pattern

import (
	"math"
	"time"

	"go-lumen/geom"
)

// slot pairs a registered pattern with its enable gate.
type slot struct {
	pattern Pattern
	enabled bool
}

// Driver advances registered patterns each frame and blends their
// per-point colors into a caller-owned buffer. The point and color
// buffers belong to the host; the driver only reads the former and
// writes the latter.
type Driver struct {
	slots []slot
}

// NewDriver returns an empty driver.
func NewDriver() *Driver {
	return &Driver{}
}

// Add registers a pattern, enabled, and returns its index.
func (d *Driver) Add(p Pattern) int {
	d.slots = append(d.slots, slot{pattern: p, enabled: true})
	return len(d.slots) - 1
}

// Len returns the number of registered patterns.
func (d *Driver) Len() int { return len(d.slots) }

// SetEnabled gates whether the pattern at i contributes to the blend.
func (d *Driver) SetEnabled(i int, on bool) {
	if i >= 0 && i < len(d.slots) {
		d.slots[i].enabled = on
	}
}

// Enabled reports the gate for the pattern at i.
func (d *Driver) Enabled(i int) bool {
	return i >= 0 && i < len(d.slots) && d.slots[i].enabled
}

// Toggle flips the gate for the pattern at i.
func (d *Driver) Toggle(i int) {
	if i >= 0 && i < len(d.slots) {
		d.slots[i].enabled = !d.slots[i].enabled
	}
}

// Frame runs one animation frame: every enabled pattern is stepped by
// the elapsed time, then one blended color per point is written into
// colors at the matching index. Channels add with saturation at 255.
// colors must be at least as long as points. Disabled patterns neither
// step nor contribute.
func (d *Driver) Frame(elapsed time.Duration, points []geom.Vec3, colors []RGB8, baseHue float64) {
	for i := range d.slots {
		if d.slots[i].enabled {
			d.slots[i].pattern.Step(elapsed)
		}
	}
	for i, p := range points {
		var out RGB8
		for _, s := range d.slots {
			if !s.enabled {
				continue
			}
			out = out.Blend(s.pattern.ColorAt(p, baseHue).RGB())
		}
		colors[i] = out
	}
}

// NewDoubleHelix builds a driver with two strands sharing the given
// geometry, the second offset by half a turn.
func NewDoubleHelix(cfg HelixConfig) (*Driver, error) {
	d := NewDriver()
	first, err := NewHelix(cfg)
	if err != nil {
		return nil, err
	}
	cfg.Phase += math.Pi
	second, err := NewHelix(cfg)
	if err != nil {
		return nil, err
	}
	d.Add(first)
	d.Add(second)
	return d, nil
}
