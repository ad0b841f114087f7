package midi

import (
	"context"
	"strings"
	"sync"
	"time"

	"go-lumen/config"
	"go-lumen/debug"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// DeviceEvent is emitted when controllers connect/disconnect
type DeviceEvent struct {
	Type       DeviceEventType
	Controller Controller
	ID         string
}

type DeviceEventType int

const (
	DeviceConnected DeviceEventType = iota
	DeviceDisconnected
)

// DeviceManager polls for MIDI grid controllers and adopts them as LED
// surfaces. The saved controller list in the config decides which ports
// are taken: known ports honor their autoConnect flag, new ports are
// connected and recorded so the user can opt them out later.
type DeviceManager struct {
	controllers map[string]Controller
	mu          sync.RWMutex
	events      chan DeviceEvent
	pollRate    time.Duration

	cfg  *config.Config
	save func() error
}

// NewDeviceManager creates a device manager consulting cfg's controller
// list. cfg may be nil, in which case every grid controller is adopted.
func NewDeviceManager(cfg *config.Config) *DeviceManager {
	dm := &DeviceManager{
		controllers: make(map[string]Controller),
		events:      make(chan DeviceEvent, 16),
		pollRate:    time.Second,
		cfg:         cfg,
	}
	dm.save = func() error {
		if dm.cfg == nil {
			return nil
		}
		return dm.cfg.Save()
	}
	return dm
}

// shouldConnect consults the saved controller list for a detected port.
// Unknown ports are adopted and written back to the config with
// autoConnect on.
func (dm *DeviceManager) shouldConnect(id string) bool {
	if dm.cfg == nil {
		return true
	}
	if known := dm.cfg.FindController(id); known != nil {
		return known.AutoConnect
	}
	dm.cfg.AddController(config.ControllerConfig{PortName: id, AutoConnect: true})
	if err := dm.save(); err != nil {
		debug.Log("midi", "save controller list: %v", err)
	}
	return true
}

// Events returns a channel of device connect/disconnect events
func (dm *DeviceManager) Events() <-chan DeviceEvent {
	return dm.events
}

// Controllers returns a snapshot of connected controllers
func (dm *DeviceManager) Controllers() map[string]Controller {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	copy := make(map[string]Controller, len(dm.controllers))
	for k, v := range dm.controllers {
		copy[k] = v
	}
	return copy
}

// GetLaunchpad returns the first connected Launchpad (or nil)
func (dm *DeviceManager) GetLaunchpad() Controller {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	for _, c := range dm.controllers {
		if c.Type() == ControllerLaunchpad {
			return c
		}
	}
	return nil
}

// Run starts the polling loop (blocking - run in goroutine)
func (dm *DeviceManager) Run(ctx context.Context) {
	ticker := time.NewTicker(dm.pollRate)
	defer ticker.Stop()

	// Initial scan
	dm.scan()

	for {
		select {
		case <-ctx.Done():
			dm.closeAll()
			close(dm.events)
			return
		case <-ticker.C:
			dm.scan()
		}
	}
}

func (dm *DeviceManager) scan() {
	// Get current MIDI ports with timeout (CoreMIDI can hang)
	type portsResult struct {
		inPorts  []drivers.In
		outPorts []drivers.Out
	}

	ch := make(chan portsResult, 1)
	go func() {
		inPorts := gomidi.GetInPorts()
		outPorts := gomidi.GetOutPorts()
		ch <- portsResult{inPorts: inPorts, outPorts: outPorts}
	}()

	var inPorts []drivers.In
	var outPorts []drivers.Out

	select {
	case result := <-ch:
		inPorts = result.inPorts
		outPorts = result.outPorts
	case <-time.After(3 * time.Second):
		// CoreMIDI is hung - skip this scan
		// User needs to run: sudo killall coreaudiod midiserver
		debug.Log("midi", "port scan timed out, skipping")
		return
	}

	// Build map of what we see now
	seenIDs := make(map[string]bool)

	// Look for Launchpads
	for i, inPort := range inPorts {
		name := strings.ToLower(inPort.String())
		if isLaunchpad(name) {
			id := inPort.String()
			seenIDs[id] = true

			dm.mu.RLock()
			_, exists := dm.controllers[id]
			dm.mu.RUnlock()

			if !exists {
				if !dm.shouldConnect(id) {
					debug.Log("midi", "skip %s (autoConnect off)", id)
					continue
				}

				// Find matching output port
				var outPort drivers.Out
				for j, op := range outPorts {
					if strings.ToLower(op.String()) == name {
						outPort = outPorts[j]
						break
					}
				}

				lp, err := NewLaunchpadController(id, inPorts[i], outPort)
				if err != nil {
					debug.Log("midi", "open %s: %v", id, err)
					continue
				}

				dm.mu.Lock()
				dm.controllers[id] = lp
				dm.mu.Unlock()

				dm.events <- DeviceEvent{
					Type:       DeviceConnected,
					Controller: lp,
					ID:         id,
				}
			}
		}
	}

	// Check for disconnects
	dm.mu.Lock()
	var toRemove []string
	for id := range dm.controllers {
		if !seenIDs[id] {
			toRemove = append(toRemove, id)
		}
	}
	for _, id := range toRemove {
		c := dm.controllers[id]
		c.Close()
		delete(dm.controllers, id)
		dm.events <- DeviceEvent{
			Type: DeviceDisconnected,
			ID:   id,
		}
	}
	dm.mu.Unlock()
}

func (dm *DeviceManager) closeAll() {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	for _, c := range dm.controllers {
		c.Close()
	}
	dm.controllers = make(map[string]Controller)
}

func isLaunchpad(name string) bool {
	name = strings.ToLower(name)
	return strings.Contains(name, "launchpad") && strings.Contains(name, "midi")
}
