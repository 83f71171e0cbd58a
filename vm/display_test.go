package vm

import "testing"

func TestScenarioDisplayModeChange(t *testing.T) {
	mem := &Memory{}
	d := NewDisplay(mem)

	d.data = 5
	d.command(dispSetMode)

	d.command(dispGetWidth)
	if d.data != 320 {
		t.Errorf("GET_WIDTH = %d, want 320", d.data)
	}
	d.command(dispGetHeight)
	if d.data != 200 {
		t.Errorf("GET_HEIGHT = %d, want 200", d.data)
	}
	d.command(dispGetMemorySize)
	if d.data != 32000 {
		t.Errorf("GET_MEMORY_SIZE = %d, want 32000", d.data)
	}
}

func TestDisplayCursorPosRecomputesIndex(t *testing.T) {
	mem := &Memory{}
	d := NewDisplay(mem)
	d.mode = 2 // 80x50 text

	d.data = 5
	d.command(dispSetCursorX)
	d.data = 2
	d.command(dispSetCursorY)

	if d.cursorIndex != 2*80+5 {
		t.Errorf("cursorIndex = %d, want %d", d.cursorIndex, 2*80+5)
	}

	d.command(dispGetCursorPos)
	if d.data != uint16(2)<<8|5 {
		t.Errorf("GET_CURSOR_POS data = %#04x, want %#04x", d.data, uint16(2)<<8|5)
	}
}

func TestDisplaySetCursorWraps(t *testing.T) {
	mem := &Memory{}
	d := NewDisplay(mem)
	d.mode = 0 // 40x25

	d.data = 45 // > width 40
	d.command(dispSetCursorX)
	if d.cursorX != 5 {
		t.Errorf("cursorX = %d after wrap, want 5", d.cursorX)
	}
}

func TestDisplayModeWrapsModulo8(t *testing.T) {
	mem := &Memory{}
	d := NewDisplay(mem)

	d.data = 9
	d.command(dispSetMode)
	if d.mode != 1 {
		t.Errorf("mode = %d, want 1 (9 mod 8)", d.mode)
	}
}

func TestDisplayDrawProducesFixedSurfaceSize(t *testing.T) {
	mem := &Memory{}
	d := NewDisplay(mem)

	surface := d.Draw()
	if len(surface) != SurfaceWidth*SurfaceHeight {
		t.Fatalf("len(surface) = %d, want %d", len(surface), SurfaceWidth*SurfaceHeight)
	}
}

func TestDisplayDrawTextModeRendersGlyph(t *testing.T) {
	mem := &Memory{}
	d := NewDisplay(mem)
	d.mode = 2 // 80x50 mono text, normal scale
	mem.SetByte(0, 'A')

	surface := d.Draw()

	found := false
	for _, px := range surface[:8*SurfaceWidth] {
		if px == palette[0x08] {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected at least one foreground pixel drawing 'A', found none")
	}
}

func TestDisplayMode4UsesHardcodedForeground(t *testing.T) {
	mem := &Memory{}
	d := NewDisplay(mem)
	d.mode = 4
	mem.SetByte(0, 0x01) // bit 0 set -> first pixel lit

	surface := d.Draw()
	if surface[0] != mode4ForegroundHack {
		t.Errorf("surface[0] = %#06x, want %#06x", surface[0], mode4ForegroundHack)
	}
}
