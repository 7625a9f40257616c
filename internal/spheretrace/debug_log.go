package spheretrace

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	debugOut  io.Writer = os.Stdout
	debugOnce sync.Once
)

func debugEnabled() bool { return debugBuild || Debug }

// DebugLog prints a [DEBUG] line when Debug is set or the binary was built with -tags debug.
func DebugLog(format string, args ...interface{}) {
	if !debugEnabled() {
		return
	}
	fmt.Fprintf(debugOut, "[DEBUG] "+format+"\n", args...)
}

// DebugLogOnce is DebugLog for notices that should appear at most once per process.
func DebugLogOnce(format string, args ...interface{}) {
	if !debugEnabled() {
		return
	}
	debugOnce.Do(func() {
		fmt.Fprintf(debugOut, "[DEBUG] "+format+"\n", args...)
	})
}
