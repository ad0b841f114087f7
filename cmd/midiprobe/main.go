package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "list":
		listPorts()
	case "detect":
		detectLaunchpad()
	case "leds":
		testLEDs()
	default:
		usage()
	}
}

func usage() {
	fmt.Println("MIDI probe")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list    - List all MIDI ports")
	fmt.Println("  detect  - Find Launchpad X")
	fmt.Println("  leds    - Sweep a color ramp across the grid")
}

func listPorts() {
	fmt.Println("=== MIDI Input Ports ===")
	fmt.Println("(waiting up to 3 seconds...)")

	type result struct {
		ins  []drivers.In
		outs []drivers.Out
	}
	ch := make(chan result, 1)
	go func() {
		ins := midi.GetInPorts()
		outs := midi.GetOutPorts()
		ch <- result{ins: ins, outs: outs}
	}()

	select {
	case r := <-ch:
		for i, p := range r.ins {
			fmt.Printf("  %d: %s\n", i, p.String())
		}
		fmt.Println("\n=== MIDI Output Ports ===")
		for i, p := range r.outs {
			fmt.Printf("  %d: %s\n", i, p.String())
		}
	case <-time.After(3 * time.Second):
		fmt.Println("\nTIMEOUT! CoreMIDI is hung.")
		fmt.Println("Fix: sudo killall coreaudiod midiserver")
	}
}

func findLaunchpadOut() drivers.Out {
	for _, p := range midi.GetOutPorts() {
		name := strings.ToLower(p.String())
		if strings.Contains(name, "launchpad") && strings.Contains(name, "midi") {
			return p
		}
	}
	return nil
}

func detectLaunchpad() {
	fmt.Println("Looking for Launchpad X...")

	out := findLaunchpadOut()
	if out == nil {
		fmt.Println("No Launchpad found")
		return
	}
	fmt.Printf("Found: %s\n", out.String())
}

// testLEDs switches the device to programmer mode and sweeps a
// brightness ramp across the grid, column by column.
func testLEDs() {
	out := findLaunchpadOut()
	if out == nil {
		fmt.Println("No Launchpad found")
		return
	}

	send, err := midi.SendTo(out)
	if err != nil {
		fmt.Printf("open output: %v\n", err)
		return
	}

	// Programmer mode
	send(midi.SysEx([]byte{0x00, 0x20, 0x29, 0x02, 0x0C, 0x00, 0x7F}))

	// Velocity palette ramp across red..white entries
	ramp := []uint8{5, 9, 13, 21, 37, 45, 49, 119}

	fmt.Println("Sweeping...")
	for col := 0; col < 8; col++ {
		for row := 0; row < 8; row++ {
			note := uint8((row+1)*10 + col + 1)
			send(midi.NoteOn(0, note, ramp[col]))
		}
		time.Sleep(120 * time.Millisecond)
	}

	time.Sleep(time.Second)

	// Clear
	for col := 0; col < 8; col++ {
		for row := 0; row < 8; row++ {
			note := uint8((row+1)*10 + col + 1)
			send(midi.NoteOn(0, note, 0))
		}
	}
	fmt.Println("Done")
}
