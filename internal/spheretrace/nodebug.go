//go:build !debug
// +build !debug

package spheretrace

const debugBuild = false
