package engine

import (
	"fmt"
	"time"

	"go-lumen/config"
	"go-lumen/geom"
	"go-lumen/pattern"
)

// BuildAxis converts a config axis into geometry.
func BuildAxis(c config.AxisConfig) (geom.Axis, error) {
	return geom.NewAxis(
		geom.Vec3{X: c.Origin[0], Y: c.Origin[1], Z: c.Origin[2]},
		geom.Vec3{X: c.Direction[0], Y: c.Direction[1], Z: c.Direction[2]},
	)
}

// BuildDriver constructs the configured pattern arrangement: the two
// helix strands (indexes 0 and 1) plus the axial wave (index 2, gated
// by its enabled flag).
func BuildDriver(helix config.HelixConfig, wave config.WaveConfig) (*pattern.Driver, error) {
	axis, err := BuildAxis(helix.Axis)
	if err != nil {
		return nil, fmt.Errorf("helix axis: %w", err)
	}

	d, err := pattern.NewDoubleHelix(pattern.HelixConfig{
		Axis:   axis,
		Pitch:  helix.Pitch,
		Radius: helix.Radius,
		Girth:  helix.Girth,
		Period: time.Duration(helix.PeriodMs) * time.Millisecond,
	})
	if err != nil {
		return nil, err
	}

	waveAxis, err := BuildAxis(wave.Axis)
	if err != nil {
		return nil, fmt.Errorf("wave axis: %w", err)
	}
	w, err := pattern.NewWave(pattern.WaveConfig{
		Axis:       waveAxis,
		Wavelength: wave.Wavelength,
		HueOffset:  wave.HueOffset,
		Period:     time.Duration(wave.PeriodMs) * time.Millisecond,
	})
	if err != nil {
		return nil, err
	}
	idx := d.Add(w)
	d.SetEnabled(idx, wave.Enabled)

	return d, nil
}
