package midi

// ControllerType identifies the kind of controller
type ControllerType int

const (
	ControllerUnknown ControllerType = iota
	ControllerLaunchpad
)

// PadEvent is sent when a pad/button is pressed on a grid controller
type PadEvent struct {
	Row, Col int
	Velocity uint8
}

// LEDUpdate addresses a single pad LED.
type LEDUpdate struct {
	Row, Col int
	Color    [3]uint8
	Channel  uint8 // ChannelStatic, ChannelFlash or ChannelPulse
}

// Controller is the interface for grid controllers used as LED
// surfaces: the engine pushes frame colors to the grid and receives
// pad presses back.
type Controller interface {
	ID() string
	Type() ControllerType

	// Input events from the controller
	PadEvents() <-chan PadEvent

	// Output to the controller. The engine always batches, diffed
	// against the previous frame.
	SetLEDBatch(updates []LEDUpdate) error
	ClearLEDs() error

	// Lifecycle
	Close() error
}

// Channel modes for LED updates
const (
	ChannelStatic uint8 = 0 // solid color
	ChannelFlash  uint8 = 1 // flashing A/B alternating
	ChannelPulse  uint8 = 2 // pulsing (fades)
)
