package engine

import (
	"math"
	"sync"
	"time"

	"go-lumen/debug"
	"go-lumen/fixture"
	"go-lumen/geom"
	"go-lumen/midi"
	"go-lumen/pattern"
)

// Frame rate of the animation clock
const frameFPS = 30

// Manager owns the frame loop: it advances the pattern driver by wall
// clock time, keeps the fixture color buffer, mirrors it onto a
// connected grid controller (diffed and batched), and notifies the TUI
// after every frame. The full point-buffer pass is sequential inside
// one goroutine; other goroutines only read snapshots under the lock.
type Manager struct {
	driver *pattern.Driver
	layout fixture.Layout
	points []geom.Vec3
	colors []pattern.RGB8

	baseHue  float64 // ambient hue, degrees; passed into every frame
	hueDrift float64 // degrees per second
	running  bool
	lastTick time.Time
	frames   uint64

	controller midi.Controller
	prevLEDs   map[[2]int]pattern.RGB8

	stopChan chan struct{}
	mu       sync.RWMutex

	// Notify TUI of updates
	UpdateChan chan struct{}
}

// NewManager wires a driver to a fixture layout. baseHue is the
// starting ambient hue in degrees, hueDrift how fast it wanders.
func NewManager(driver *pattern.Driver, layout fixture.Layout, baseHue, hueDrift float64) *Manager {
	return &Manager{
		driver:     driver,
		layout:     layout,
		points:     layout.Points(),
		colors:     make([]pattern.RGB8, layout.Count()),
		baseHue:    wrapHue(baseHue),
		hueDrift:   hueDrift,
		lastTick:   time.Now(),
		prevLEDs:   make(map[[2]int]pattern.RGB8),
		stopChan:   make(chan struct{}),
		UpdateChan: make(chan struct{}, 1),
	}
}

// StartRuntime starts the frame clock goroutine (called once at startup)
func (m *Manager) StartRuntime() {
	go m.frameLoop()
}

// Shutdown stops the frame clock and blanks the controller.
func (m *Manager) Shutdown() {
	close(m.stopChan)
	m.mu.Lock()
	ctrl := m.controller
	m.controller = nil
	m.mu.Unlock()
	if ctrl != nil {
		ctrl.ClearLEDs()
	}
}

func (m *Manager) frameLoop() {
	ticker := time.NewTicker(time.Second / frameFPS)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopChan:
			return
		case now := <-ticker.C:
			m.mu.Lock()
			elapsed := now.Sub(m.lastTick)
			m.lastTick = now
			m.mu.Unlock()
			m.Advance(elapsed)
		}
	}
}

// Advance runs one animation frame: drift the ambient hue, step every
// enabled pattern by elapsed, blend colors into the buffer, then push
// the result to the controller and the TUI. A no-op while stopped.
func (m *Manager) Advance(elapsed time.Duration) {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.baseHue = wrapHue(m.baseHue + m.hueDrift*elapsed.Seconds())
	m.driver.Frame(elapsed, m.points, m.colors, m.baseHue)
	m.frames++
	frames := m.frames
	m.mu.Unlock()

	m.flushLEDs()
	m.notifyUpdate()
	debug.LogEvery(300, "frame", "frames=%d hue=%.1f", frames, m.baseHue)
}

// Play starts the animation clock.
func (m *Manager) Play() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return
	}
	m.running = true
	m.lastTick = time.Now()
}

// Stop freezes the animation. The last frame stays on the fixture.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.running = false
}

// Running reports whether the clock is advancing.
func (m *Manager) Running() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.running
}

// TogglePattern flips the enable gate for the pattern at i.
func (m *Manager) TogglePattern(i int) {
	m.mu.Lock()
	m.driver.Toggle(i)
	m.mu.Unlock()
	m.notifyUpdate()
}

// PatternEnabled reports the gate for the pattern at i.
func (m *Manager) PatternEnabled(i int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.driver.Enabled(i)
}

// PatternCount returns the number of registered patterns.
func (m *Manager) PatternCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.driver.Len()
}

// SetDriver swaps in a new pattern arrangement (preset load).
func (m *Manager) SetDriver(d *pattern.Driver) {
	m.mu.Lock()
	m.driver = d
	m.mu.Unlock()
	m.notifyUpdate()
}

// SetHueDrift sets the ambient hue drift in degrees per second.
func (m *Manager) SetHueDrift(degPerSec float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hueDrift = degPerSec
}

// HueDrift returns the ambient hue drift in degrees per second.
func (m *Manager) HueDrift() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hueDrift
}

// State returns the running flag, current ambient hue and frame count.
func (m *Manager) State() (running bool, hue float64, frames uint64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.running, m.baseHue, m.frames
}

// Layout returns the fixture layout being driven.
func (m *Manager) Layout() fixture.Layout {
	return m.layout
}

// Colors returns a snapshot copy of the fixture color buffer.
func (m *Manager) Colors() []pattern.RGB8 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]pattern.RGB8, len(m.colors))
	copy(out, m.colors)
	return out
}

// SetController attaches a grid controller as an LED surface.
func (m *Manager) SetController(c midi.Controller) {
	debug.Log("ctrl", "SetController called, resetting diff state")
	m.mu.Lock()
	m.controller = c
	m.prevLEDs = make(map[[2]int]pattern.RGB8) // reset - diff will handle clearing
	m.mu.Unlock()
	m.notifyUpdate()
}

// flushLEDs mirrors the fixture's front panel onto the controller grid,
// sending only the LEDs that changed since the previous frame.
func (m *Manager) flushLEDs() {
	m.mu.RLock()
	ctrl := m.controller
	m.mu.RUnlock()
	if ctrl == nil {
		return
	}

	rows := m.layout.Dim.Y
	if rows > 8 {
		rows = 8
	}
	cols := m.layout.Dim.X
	if cols > 8 {
		cols = 8
	}

	m.mu.Lock()
	newMap := make(map[[2]int]pattern.RGB8, rows*cols)
	var updates []midi.LEDUpdate
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := m.colors[m.layout.Index(col, row, 0)]
			key := [2]int{row, col}
			newMap[key] = c
			if prev, ok := m.prevLEDs[key]; !ok || prev != c {
				updates = append(updates, midi.LEDUpdate{
					Row:   row,
					Col:   col,
					Color: c,
				})
			}
		}
	}
	m.prevLEDs = newMap
	m.mu.Unlock()

	if len(updates) > 0 {
		debug.LogEvery(100, "led", "flush batch=%d", len(updates))
		ctrl.SetLEDBatch(updates)
	}
}

// notifyUpdate nudges the TUI without blocking the frame loop.
func (m *Manager) notifyUpdate() {
	select {
	case m.UpdateChan <- struct{}{}:
	default:
	}
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
