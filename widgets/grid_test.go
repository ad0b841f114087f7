package widgets

import (
	"strings"
	"testing"
)

func TestRenderPadRow(t *testing.T) {
	row := RenderPadRow([][3]uint8{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}})
	if got := strings.Count(row, "■"); got != 3 {
		t.Errorf("pad count = %d, want 3", got)
	}
	if strings.Contains(row, "\n") {
		t.Error("a single row should not span lines")
	}
}

func TestRenderGrid(t *testing.T) {
	colors := make([][3]uint8, 6)
	grid := RenderGrid(2, 3, colors, func(x, y int) int {
		return y*3 + x
	})

	lines := strings.Split(grid, "\n")
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}
	for i, line := range lines {
		if got := strings.Count(line, "■"); got != 3 {
			t.Errorf("line %d pad count = %d, want 3", i, got)
		}
	}
}

func TestRenderGridOutOfRangeIndex(t *testing.T) {
	// A short buffer still renders a full grid of pads
	colors := make([][3]uint8, 2)
	grid := RenderGrid(2, 2, colors, func(x, y int) int {
		return y*2 + x
	})
	if got := strings.Count(grid, "■"); got != 4 {
		t.Errorf("pad count = %d, want 4", got)
	}
}

func TestRenderLegendItem(t *testing.T) {
	item := RenderLegendItem([3]uint8{0, 255, 0}, "1:helix A", "on")
	if !strings.Contains(item, "■") {
		t.Error("legend item should lead with a pad")
	}
	if !strings.Contains(item, "1:helix A - on") {
		t.Errorf("legend item = %q, want name and description", item)
	}
}

func TestRenderKeyHelp(t *testing.T) {
	help := RenderKeyHelp([]KeySection{
		{Title: "Transport", Keys: []KeyBinding{
			{Key: "space", Desc: "play / stop"},
			{Key: "q", Desc: "quit"},
		}},
	})

	lines := strings.Split(help, "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}
	if lines[0] != "Transport" {
		t.Errorf("title line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  space") || !strings.HasSuffix(lines[1], " play / stop") {
		t.Errorf("key line = %q", lines[1])
	}
	if len(lines[1]) != len("  ")+12+1+len("play / stop") {
		t.Errorf("key column not aligned to 12: %q", lines[1])
	}
}
