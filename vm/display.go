package vm

// display.go implements the memory-mapped display peripheral: the
// 3-port command protocol, the 8 display modes, and the draw() routine
// that renders the current mode's framebuffer into a host-sized pixel
// surface. Window creation and blitting to an actual window are host
// concerns, handled by cmd/ssvm; this file only ever produces pixel
// values in memory.
//
// Grounded on original_source/src/display.c for the command switch,
// mode tables and per-mode draw routines, and on the teacher's
// nes/display.go for the separation between an RGBA-ish pixel surface
// and the code that populates it (DrawPixel vs UpdateScreen there).

const (
	portDisplayCommand byte = 0x30
	portDisplayDataLo  byte = 0x31
	portDisplayDataHi  byte = 0x32
)

// Display commands, grouped by high nibble per spec.md §4.5.
const (
	dispGetMemorySize byte = 0x00
	dispGetWidth      byte = 0x01
	dispGetHeight     byte = 0x02

	dispGetMemoryBase  byte = 0x10
	dispGetMode        byte = 0x11
	dispGetCursorIndex byte = 0x12
	dispGetCursorX     byte = 0x13
	dispGetCursorY     byte = 0x14
	dispGetCursorPos   byte = 0x15
	dispGetCursorType  byte = 0x16

	dispSetMemoryBase  byte = 0x20
	dispSetMode        byte = 0x21
	dispSetCursorIndex byte = 0x22
	dispSetCursorX     byte = 0x23
	dispSetCursorY     byte = 0x24
	dispSetCursorPos   byte = 0x25
	dispSetCursorType  byte = 0x26
)

const displayModeCount = 8

var displayMemorySize = [displayModeCount]uint16{1000, 2000, 4000, 8000, 8000, 32000, 8000, 32000}
var displayWidth = [displayModeCount]uint16{40, 40, 80, 80, 320, 320, 320, 320}
var displayHeight = [displayModeCount]uint16{25, 25, 50, 50, 200, 200, 200, 200}

// SurfaceWidth and SurfaceHeight are the fixed dimensions of the host
// pixel surface produced by Draw, regardless of display mode.
const (
	SurfaceWidth  = 640
	SurfaceHeight = 400
)

// Display is the memory-mapped display peripheral.
type Display struct {
	mem *Memory

	base uint16
	mode byte

	cursorX, cursorY byte
	cursorIndex      uint16
	cursorType       byte

	data uint16
}

// NewDisplay wires a Display to the machine's shared memory for
// framebuffer reads.
func NewDisplay(mem *Memory) *Display {
	return &Display{mem: mem}
}

// Attach binds the display's ports into fabric.
func (d *Display) Attach(io *IOFabric) {
	io.RegisterWrite(portDisplayCommand, func(_ byte, v byte) { d.command(v) })
	io.RegisterWrite(portDisplayDataLo, func(_ byte, v byte) { d.data = (d.data &^ 0x00FF) | uint16(v) })
	io.RegisterWrite(portDisplayDataHi, func(_ byte, v byte) { d.data = (d.data &^ 0xFF00) | uint16(v)<<8 })
	io.RegisterRead(portDisplayDataLo, func(byte) byte { return byte(d.data) })
	io.RegisterRead(portDisplayDataHi, func(byte) byte { return byte(d.data >> 8) })
}

func (d *Display) setDataByte(v byte) {
	d.data = uint16(v) | uint16(v)<<8
}

func (d *Display) command(cmd byte) {
	width := displayWidth[d.mode]
	height := displayHeight[d.mode]

	switch cmd {
	case dispGetMemorySize:
		d.data = displayMemorySize[d.mode]
	case dispGetWidth:
		d.data = width
	case dispGetHeight:
		d.data = height

	case dispGetMemoryBase:
		d.data = d.base
	case dispGetMode:
		d.setDataByte(d.mode)
	case dispGetCursorIndex:
		d.data = d.cursorIndex
	case dispGetCursorX:
		d.setDataByte(d.cursorX)
	case dispGetCursorY:
		d.setDataByte(d.cursorY)
	case dispGetCursorPos:
		d.data = uint16(d.cursorY)<<8 | uint16(d.cursorX)
	case dispGetCursorType:
		d.setDataByte(d.cursorType)

	case dispSetMemoryBase:
		d.base = d.data
	case dispSetMode:
		d.mode = byte(d.data) % displayModeCount
	case dispSetCursorIndex:
		width = displayWidth[d.mode]
		height = displayHeight[d.mode]
		d.cursorX = byte(d.data % width)
		d.cursorY = byte((d.data / width) % height)
		d.recomputeCursorIndex()
	case dispSetCursorX:
		d.cursorX = byte(uint16(byte(d.data)) % width)
		d.recomputeCursorIndex()
	case dispSetCursorY:
		d.cursorY = byte(uint16(byte(d.data)) % height)
		d.recomputeCursorIndex()
	case dispSetCursorPos:
		d.cursorX = byte(uint16(byte(d.data)) % width)
		d.cursorY = byte(uint16(byte(d.data>>8)) % height)
		d.recomputeCursorIndex()
	case dispSetCursorType:
		d.cursorType = byte(d.data)
	}
}

func (d *Display) recomputeCursorIndex() {
	width := displayWidth[d.mode]
	d.cursorIndex = uint16(d.cursorY)*width + uint16(d.cursorX)
}

// mode shape helpers.

func (d *Display) isTextMode() bool   { return d.mode < 4 }
func (d *Display) is16Color() bool    { return d.mode%2 == 1 }
func (d *Display) isDoubleScale() bool { return d.mode == 0 || d.mode == 1 || d.mode >= 4 }

// Draw renders the current mode's framebuffer into a 640x400 ARGB pixel
// surface, row-major, doubling logical pixels into 2x2 blocks for
// double-scale modes.
func (d *Display) Draw() []uint32 {
	surface := make([]uint32, SurfaceWidth*SurfaceHeight)

	switch {
	case d.isTextMode():
		d.drawText(surface)
	default:
		d.drawPixels(surface)
	}

	return surface
}

func (d *Display) setPixel(surface []uint32, x, y int, c uint32) {
	if x < 0 || y < 0 || x >= SurfaceWidth || y >= SurfaceHeight {
		return
	}
	surface[y*SurfaceWidth+x] = c
}

func (d *Display) setPixelScaled(surface []uint32, x, y int, c uint32) {
	if d.isDoubleScale() {
		x *= 2
		y *= 2
		d.setPixel(surface, x, y, c)
		d.setPixel(surface, x+1, y, c)
		d.setPixel(surface, x, y+1, c)
		d.setPixel(surface, x+1, y+1, c)
		return
	}
	d.setPixel(surface, x, y, c)
}

func (d *Display) drawChar(surface []uint32, x, y int, ch, color byte) {
	bits := Glyph(ch)
	fg := palette[color&0x0F]
	bg := palette[color>>4]
	for i := 0; i < fontCharSize; i++ {
		for j := 0; j < fontCharSize; j++ {
			c := bg
			if bits&1 != 0 {
				c = fg
			}
			d.setPixelScaled(surface, x+j, y+i, c)
			bits >>= 1
		}
	}
}

func (d *Display) drawText(surface []uint32) {
	width := int(displayWidth[d.mode])
	height := int(displayHeight[d.mode])
	addr := d.base

	for row := 0; row < height; row++ {
		x := 0
		for col := 0; col < width; col++ {
			ch := d.mem.GetByte(addr)
			addr++
			color := byte(0x08)
			if d.is16Color() {
				color = d.mem.GetByte(addr)
				addr++
			}
			d.drawChar(surface, x, row*fontCharSize, ch, color)
			x += fontCharSize
		}
	}
}

// mode4ForegroundHack is the literal 0xABCDEF foreground color the
// original uses for mono pixel mode in place of a palette lookup.
const mode4ForegroundHack uint32 = 0xABCDEF

func (d *Display) drawPixels(surface []uint32) {
	width := int(displayWidth[d.mode])
	height := int(displayHeight[d.mode])

	if d.is16Color() {
		pixelIndex := 0
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				addr := d.base + uint16(pixelIndex>>1)
				shift := byte(0)
				if pixelIndex&1 == 1 {
					shift = 4
				}
				pixel := (d.mem.GetByte(addr) >> shift) & 0x0F
				pixelIndex++
				d.setPixelScaled(surface, x, y, palette[pixel])
			}
		}
		return
	}

	pixelIndex := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			addr := d.base + uint16(pixelIndex>>3)
			shift := uint(pixelIndex & 7)
			pixelIndex++
			bit := (d.mem.GetByte(addr) >> shift) & 1
			c := uint32(0)
			if bit != 0 {
				c = mode4ForegroundHack
			}
			d.setPixelScaled(surface, x, y, c)
		}
	}
}
