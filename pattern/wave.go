package pattern

import (
	"fmt"
	"math"
	"time"

	"go-lumen/geom"
)

// WaveConfig describes an axial brightness sweep.
type WaveConfig struct {
	Axis       geom.Axis
	Wavelength float64       // axial distance per cycle
	HueOffset  float64       // degrees added to the ambient base hue
	Period     time.Duration // time per cycle; 0 disables animation
}

// Wave sweeps a sawtooth brightness ramp along its axis: a sharp bright
// front followed by a linear decay, repeating every wavelength.
type Wave struct {
	cfg   WaveConfig
	phase float64
}

// NewWave validates the config.
func NewWave(cfg WaveConfig) (*Wave, error) {
	if cfg.Wavelength <= 0 {
		return nil, fmt.Errorf("wave wavelength must be positive, got %v", cfg.Wavelength)
	}
	return &Wave{cfg: cfg}, nil
}

// Step advances the sweep by the elapsed frame time.
func (w *Wave) Step(elapsed time.Duration) {
	if w.cfg.Period == 0 {
		return
	}
	w.phase = wrapAngle(w.phase + elapsed.Seconds()/w.cfg.Period.Seconds()*tau)
}

// Phase returns the current sweep offset in radians.
func (w *Wave) Phase() float64 { return w.phase }

// ColorAt returns the sweep's contribution at p. The front moves toward
// the axis direction as the phase advances.
func (w *Wave) ColorAt(p geom.Vec3, baseHue float64) Color {
	t := w.cfg.Axis.ParamOf(p)
	cycle := t/w.cfg.Wavelength - w.phase/tau
	frac := cycle - math.Floor(cycle)

	hue := math.Mod(baseHue+w.cfg.HueOffset, 360)
	if hue < 0 {
		hue += 360
	}
	return Color{H: hue, S: 80, V: 100 * (1 - frac)}
}
