package vm

import (
	"log"
	"regexp"
	"runtime"
	"time"
)

// timeTrack logs how long the calling function took to run. Machine.RunFrame
// calls it deferred, gated on Logger being non-nil, the same debug-timing
// idiom the teacher applies around PPU/CPU steps in nes/bus.go.
func timeTrack(l *log.Logger, start time.Time) {
	elapsed := time.Since(start)

	pc, _, _, _ := runtime.Caller(1)
	funcObj := runtime.FuncForPC(pc)

	runtimeFunc := regexp.MustCompile(`^.*\.(.*)$`)
	name := runtimeFunc.ReplaceAllString(funcObj.Name(), "$1")

	l.Printf("%s took %s", name, elapsed)
}
