package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-lumen/config"
	"go-lumen/engine"
	"go-lumen/midi"
	"go-lumen/theme"
	"go-lumen/widgets"
)

// patternNames labels the driver's registered slots in order.
var patternNames = []string{"helix A", "helix B", "wave"}

type Model struct {
	Manager   *engine.Manager
	DeviceMgr *midi.DeviceManager
	Theme     *theme.Theme
	Config    *config.Config

	quitting   bool
	status     string
	statusErr  bool
	controller midi.Controller // current controller (may be nil)
}

type UpdateMsg struct{}

type DeviceEventMsg midi.DeviceEvent

func NewModel(manager *engine.Manager, deviceMgr *midi.DeviceManager, th *theme.Theme, cfg *config.Config) Model {
	return Model{
		Manager:   manager,
		DeviceMgr: deviceMgr,
		Theme:     th,
		Config:    cfg,
	}
}

func ListenForUpdates(manager *engine.Manager) tea.Cmd {
	return func() tea.Msg {
		<-manager.UpdateChan
		return UpdateMsg{}
	}
}

func ListenForDevices(deviceMgr *midi.DeviceManager) tea.Cmd {
	return func() tea.Msg {
		event := <-deviceMgr.Events()
		return DeviceEventMsg(event)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		ListenForUpdates(m.Manager),
		ListenForDevices(m.DeviceMgr),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			m.Manager.Shutdown()
			return m, tea.Quit

		case " ", "p":
			if m.Manager.Running() {
				m.Manager.Stop()
				m.setStatus("stopped")
			} else {
				m.Manager.Play()
				m.setStatus("playing")
			}

		case "1", "2", "3", "4", "5", "6", "7", "8":
			idx := int(msg.String()[0] - '1')
			if idx < m.Manager.PatternCount() {
				m.Manager.TogglePattern(idx)
			}

		case "+", "=":
			m.Manager.SetHueDrift(m.Manager.HueDrift() + 2)

		case "-", "_":
			drift := m.Manager.HueDrift() - 2
			if drift < 0 {
				drift = 0
			}
			m.Manager.SetHueDrift(drift)

		case "s":
			preset := &config.Preset{
				Helix:    m.Config.Helix,
				Wave:     m.Config.Wave,
				HueDrift: m.Manager.HueDrift(),
			}
			if err := config.SavePreset(preset); err != nil {
				m.setError(fmt.Sprintf("preset save failed: %v", err))
			} else {
				m.setStatus(fmt.Sprintf("saved preset %s", preset.Name))
			}

		case "l":
			m = m.loadLatestPreset()
		}

	case UpdateMsg:
		return m, ListenForUpdates(m.Manager)

	case DeviceEventMsg:
		event := midi.DeviceEvent(msg)
		if event.Type == midi.DeviceConnected {
			m.controller = event.Controller
			m.Manager.SetController(event.Controller)
			m.setStatus(fmt.Sprintf("connected %s", event.ID))

			// Side-column pads toggle pattern gates
			go func(mgr *engine.Manager, ctrl midi.Controller) {
				for pad := range ctrl.PadEvents() {
					if pad.Col == 8 && pad.Row < mgr.PatternCount() {
						mgr.TogglePattern(pad.Row)
					}
				}
			}(m.Manager, event.Controller)
		} else if event.Type == midi.DeviceDisconnected {
			if m.controller != nil && m.controller.ID() == event.ID {
				m.controller = nil
				m.Manager.SetController(nil)
				m.setStatus("controller disconnected")
			}
		}
		return m, ListenForDevices(m.DeviceMgr)
	}

	return m, nil
}

// loadLatestPreset applies the most recently saved preset by rebuilding
// the pattern arrangement and swapping it into the running engine.
func (m Model) loadLatestPreset() Model {
	names, err := config.ListPresets()
	if err != nil || len(names) == 0 {
		m.setError("no presets")
		return m
	}
	preset, err := config.LoadPreset(names[0])
	if err != nil {
		m.setError(fmt.Sprintf("preset load failed: %v", err))
		return m
	}
	driver, err := engine.BuildDriver(preset.Helix, preset.Wave)
	if err != nil {
		m.setError(fmt.Sprintf("preset %s invalid: %v", preset.Name, err))
		return m
	}
	m.Config.Helix = preset.Helix
	m.Config.Wave = preset.Wave
	m.Manager.SetDriver(driver)
	m.Manager.SetHueDrift(preset.HueDrift)
	m.setStatus(fmt.Sprintf("loaded preset %s", preset.Name))
	return m
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	running, hue, frames := m.Manager.State()

	// Styles
	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	fgStyle := lipgloss.NewStyle().Foreground(m.Theme.FG())
	activeStyle := lipgloss.NewStyle().Foreground(m.Theme.Active())
	warnStyle := lipgloss.NewStyle().Foreground(m.Theme.Warning())

	playState := dimStyle.Render("STOP")
	if running {
		playState = activeStyle.Render("PLAY")
	}

	deviceStatus := ""
	if m.controller != nil {
		deviceStatus = "  LP:X"
	}

	header := headerStyle.Render("go-lumen  ") + playState + headerStyle.Render(fmt.Sprintf(
		"  hue:%5.1f  drift:%.0f deg/s  frame:%06d%s",
		hue, m.Manager.HueDrift(), frames, deviceStatus))

	// Fixture preview
	layout := m.Manager.Layout()
	colors := m.Manager.Colors()
	pads := make([][3]uint8, len(colors))
	for i, c := range colors {
		pads[i] = c
	}
	grid := widgets.RenderGrid(layout.Dim.Y, layout.Dim.X, pads, func(x, y int) int {
		return layout.Index(x, y, 0)
	})

	// Pattern gates, one legend line per slot: the pad color carries
	// the gate state so it reads at a glance.
	var gates []string
	for i := 0; i < m.Manager.PatternCount(); i++ {
		name := fmt.Sprintf("pattern %d", i+1)
		if i < len(patternNames) {
			name = patternNames[i]
		}
		sym := m.Theme.Symbols.Disabled
		padColor := m.Theme.RGB(theme.RoleMuted)
		state := "off"
		if m.Manager.PatternEnabled(i) {
			sym = m.Theme.Symbols.Enabled
			padColor = m.Theme.RGB(theme.RoleSuccess)
			state = "on"
		}
		gates = append(gates, widgets.RenderLegendItem(
			padColor, fmt.Sprintf("%c %d:%s", sym, i+1, name), state))
	}

	help := dimStyle.Render(widgets.RenderKeyHelp([]widgets.KeySection{
		{Keys: []widgets.KeyBinding{
			{Key: "space/p", Desc: "play / stop"},
			{Key: "1-3", Desc: "toggle pattern"},
			{Key: "+/-", Desc: "hue drift rate"},
			{Key: "s / l", Desc: "save / load preset"},
			{Key: "q", Desc: "quit"},
		}},
	}))

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(grid)
	out.WriteString("\n\n")
	out.WriteString(strings.Join(gates, "\n"))
	out.WriteString("\n\n")
	out.WriteString(help)

	if m.status != "" {
		style := fgStyle
		if m.statusErr {
			style = warnStyle
		}
		out.WriteString("\n")
		out.WriteString(style.Render(m.status))
	}

	return out.String()
}
