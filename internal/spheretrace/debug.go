//go:build debug
// +build debug

package spheretrace

// debugBuild turns DebugLog on regardless of the Debug flag.
const debugBuild = true
