package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/tdstrand/ssvm/vm"
)

// Window is the host-side collaborator spec.md keeps outside the core:
// it owns the pixelgl window, turns a []uint32 ARGB surface from
// vm.Display.Draw into an image.RGBA, and blits it. Grounded on the
// teacher's Display (nes/display.go), narrowed to one game panel plus
// an optional debug panel instead of a PPU pattern-table viewer.
type Window struct {
	rgba  *image.RGBA
	debug *image.RGBA

	window      *pixelgl.Window
	matrix      pixel.Matrix
	debugMatrix pixel.Matrix

	debugAtlas   *text.Atlas
	debugRegText *text.Text

	isDebug bool
}

const (
	screenW float64 = vm.SurfaceWidth
	screenH float64 = vm.SurfaceHeight

	debugResW float64 = 360
)

// NewWindow creates the pixelgl window sized to the machine's fixed
// 640x400 surface, optionally widened for a debug register panel.
func NewWindow(isDebug bool) *Window {
	rect := image.Rect(0, 0, vm.SurfaceWidth, vm.SurfaceHeight)
	rgba := image.NewRGBA(rect)

	debugRect := image.Rect(0, 0, int(debugResW), vm.SurfaceHeight)
	debug := image.NewRGBA(debugRect)

	width := screenW
	if isDebug {
		width += debugResW
	}

	config := pixelgl.WindowConfig{
		Title:  "Stack VM",
		Bounds: pixel.R(0, 0, width, screenH),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(config)
	if err != nil {
		panic(err)
	}

	pic := pixel.PictureDataFromImage(rgba)
	matrix := pixel.IM.Moved(pic.Bounds().Center())

	debugPic := pixel.PictureDataFromImage(debug)
	debugMatrix := pixel.IM.Moved(debugPic.Bounds().Center().Add(pixel.V(screenW, 0)))

	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	regText := text.New(pixel.V(screenW+8, screenH-16), atlas)

	return &Window{
		rgba:         rgba,
		debug:        debug,
		window:       win,
		matrix:       matrix,
		debugMatrix:  debugMatrix,
		debugAtlas:   atlas,
		debugRegText: regText,
		isDebug:      isDebug,
	}
}

// Closed reports whether the user has closed the window.
func (w *Window) Closed() bool {
	return w.window.Closed()
}

// PresentSurface is the host_hooks.present_surface collaborator from
// spec.md §6: it copies a row-major ARGB pixel surface into the
// window's backing image. width/height are always vm.SurfaceWidth/
// vm.SurfaceHeight for this machine.
func (w *Window) PresentSurface(surface []uint32, width, height int) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px := surface[y*width+x]
			w.rgba.Set(x, height-1-y, argbToColor(px))
		}
	}
}

func argbToColor(px uint32) color.RGBA {
	return color.RGBA{
		R: byte(px >> 16),
		G: byte(px >> 8),
		B: byte(px),
		A: 0xFF,
	}
}

// DrawDebugPanel renders CPU register state into the debug panel.
func (w *Window) DrawDebugPanel(m *vm.Machine) {
	w.debugRegText.Clear()
	fmt.Fprintf(w.debugRegText, "A: %#04X\n", m.CPU.A)
	fmt.Fprintf(w.debugRegText, "B: %#04X\n", m.CPU.B)
	fmt.Fprintf(w.debugRegText, "S: %#04X\n", m.CPU.S)
	fmt.Fprintf(w.debugRegText, "I: %#04X\n", m.CPU.I)
	fmt.Fprintf(w.debugRegText, "F: %08b\n", m.CPU.F)
}

// Update blits the current surface (and debug panel, if enabled) and
// swaps buffers.
func (w *Window) Update() {
	w.window.Clear(colornames.Black)

	sprite := pixel.NewSprite(pixel.PictureDataFromImage(w.rgba), pixel.PictureDataFromImage(w.rgba).Bounds())
	sprite.Draw(w.window, w.matrix)

	if w.isDebug {
		debugSprite := pixel.NewSprite(pixel.PictureDataFromImage(w.debug), pixel.PictureDataFromImage(w.debug).Bounds())
		debugSprite.Draw(w.window, w.debugMatrix)
		w.debugRegText.Draw(w.window, pixel.IM)
	}

	w.window.Update()
}
