package spheretrace

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func captureDebug(t *testing.T, debug bool) *bytes.Buffer {
	t.Helper()
	var out bytes.Buffer
	savedOut, savedDebug := debugOut, Debug
	debugOut, Debug = &out, debug
	debugOnce = sync.Once{}
	t.Cleanup(func() {
		debugOut, Debug = savedOut, savedDebug
		debugOnce = sync.Once{}
	})
	return &out
}

func TestDebugLog(t *testing.T) {
	out := captureDebug(t, true)
	DebugLog("rendered %dx%d", 3, 2)
	if got := out.String(); got != "[DEBUG] rendered 3x2\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestDebugLogOnce(t *testing.T) {
	out := captureDebug(t, true)
	DebugLogOnce("using defaults %d", 1)
	DebugLogOnce("using defaults %d", 2)
	if got := out.String(); got != "[DEBUG] using defaults 1\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestDebugLogSilent(t *testing.T) {
	if debugBuild {
		t.Skip("debug build always logs")
	}
	out := captureDebug(t, false)
	DebugLog("hidden")
	DebugLogOnce("hidden")
	if strings.Contains(out.String(), "hidden") {
		t.Fatalf("nothing should be printed without Debug: %q", out.String())
	}
}
