package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"go-lumen/config"
	"go-lumen/debug"
	"go-lumen/engine"
	"go-lumen/fixture"
	"go-lumen/midi"
	"go-lumen/theme"
	"go-lumen/tui"
)

func main() {
	debugLog := flag.Bool("debug", false, "write a debug log to ~/.config/go-lumen/debug.log")
	flag.Parse()

	if *debugLog {
		if err := debug.Enable(); err != nil {
			fmt.Fprintf(os.Stderr, "debug log: %v\n", err)
		}
		defer debug.Disable()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// Load theme
	palette := theme.LoadGPLOrDefault(cfg.UI.PalettePath)
	th := theme.New(palette)

	// Fixture geometry
	layout := fixture.Grid(cfg.Fixture.Rows, cfg.Fixture.Cols, cfg.Fixture.Pitch)
	if cfg.Fixture.Panels > 1 {
		layout.Dim.Z = cfg.Fixture.Panels
	}
	if cfg.Fixture.Serpentine {
		layout.Order.XFlipEveryRow = true
	}

	// Pattern arrangement
	driver, err := engine.BuildDriver(cfg.Helix, cfg.Wave)
	if err != nil {
		fmt.Fprintf(os.Stderr, "patterns: %v\n", err)
		os.Exit(1)
	}

	manager := engine.NewManager(driver, layout, th.BaseHue(), cfg.UI.HueDrift)
	manager.StartRuntime()
	if cfg.UI.Autoplay {
		manager.Play()
	}

	// Create MIDI device manager (handles hot-plug, honors the saved
	// controller list)
	deviceMgr := midi.NewDeviceManager(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go deviceMgr.Run(ctx)

	fmt.Println("go-lumen")
	fmt.Println("Connect a Launchpad any time - its grid mirrors the fixture")
	fmt.Println("")

	// Create and run TUI
	m := tui.NewModel(manager, deviceMgr, th, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
