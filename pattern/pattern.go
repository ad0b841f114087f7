package pattern

import (
	"time"

	"go-lumen/geom"
)

// Pattern is a time-evolving color field over 3D space. The engine
// steps each pattern once per frame, then samples it at every fixture
// point.
type Pattern interface {
	// Step advances the animation by the elapsed frame time.
	Step(elapsed time.Duration)

	// ColorAt returns the pattern's contribution at p. baseHue is the
	// ambient hue for the current frame, in degrees.
	ColorAt(p geom.Vec3, baseHue float64) Color
}
