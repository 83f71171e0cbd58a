package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/pixel/pixelgl"

	"github.com/tdstrand/ssvm/vm"
)

// Command line flags, in the teacher's flag.BoolVar/flag.StringVar style
// (nes main.go's flagDebug/flagLogging), extended with the boot program
// and disk image paths this machine needs instead of a ROM cartridge.
var (
	flagDisk  string
	flagBoot  string
	flagDebug bool
	flagLog   bool
)

func main() {
	parseFlags()

	fmt.Println("Starting machine...")
	machine := vm.NewMachine()

	if flagLog {
		logger, err := newRunLogger()
		if err != nil {
			log.Fatalf("Unable to open log file\n%v\n", err)
		}
		machine.SetLogger(logger)
	}

	if flagBoot != "" {
		program, err := loadBoot(flagBoot)
		if err != nil {
			log.Fatalf("Unable to load boot program %v\n%v\n", flagBoot, err)
		}
		machine.LoadProgram(program)
	}

	if flagDisk != "" {
		if err := machine.Disk.LoadImage(flagDisk); err != nil {
			log.Fatalf("Unable to load disk image %v\n%v\n", flagDisk, err)
		}
	}

	window := NewWindow(flagDebug)

	pixelgl.Run(func() {
		runLoop(machine, window)
	})
}

func parseFlags() {
	flag.StringVar(&flagDisk, "disk", "", "path to a raw disk image")
	flag.StringVar(&flagBoot, "boot", "", "path to a boot program (.asm source or raw image)")
	flag.BoolVar(&flagDebug, "debug", false, "enable debug panel")
	flag.BoolVar(&flagLog, "log", false, "enable instruction trace logging")

	flag.Parse()
}

// loadBoot reads path and, if it looks like assembly source (a .asm
// extension), assembles it; otherwise it is treated as a raw binary
// image loaded verbatim at address 0.
func loadBoot(path string) ([]byte, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".asm") {
		return vm.Assemble(string(raw))
	}

	return raw, nil
}

// newRunLogger opens a timestamped log file, mirroring the teacher's
// Cpu6502 constructor (nes/cpu.go), which opens ./logs/cpuTIMESTAMP.log.
func newRunLogger() (*log.Logger, error) {
	if err := os.MkdirAll("./logs", 0755); err != nil {
		return nil, err
	}

	name := fmt.Sprintf("./logs/ssvm-%s.log", time.Now().Format("20060102-150405"))
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}

	return log.New(f, "", log.LstdFlags), nil
}

const framesPerSecond = 60
const instructionsPerFrame = 20000

func runLoop(machine *vm.Machine, window *Window) {
	interval := time.Second / framesPerSecond

	for !window.Closed() {
		t := time.Now()

		surface := machine.RunFrame(instructionsPerFrame)
		window.PresentSurface(surface, vm.SurfaceWidth, vm.SurfaceHeight)

		if flagDebug {
			window.DrawDebugPanel(machine)
		}

		window.Update()

		if elapsed := time.Since(t); elapsed < interval {
			time.Sleep(interval - elapsed)
		}
	}
}
