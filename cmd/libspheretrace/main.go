// Command libspheretrace builds the renderer as a C shared library:
//
//	go build -buildmode=c-shared -o libspheretrace.so ./cmd/libspheretrace
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/lukaszgryglicki/spheretrace/internal/spheretrace"
)

// fixed is a C-allocated buffer of FixedBufferLen floats backing raytrace1.
// It is overwritten by every call and never freed.
var fixed unsafe.Pointer

//export raytrace1
func raytrace1(width, height C.int) *C.float {
	buf, err := spheretrace.RaytraceFixed(int(width), int(height))
	if err != nil {
		spheretrace.DebugLog("raytrace1(%d, %d): %v", width, height, err)
		return nil
	}
	if fixed == nil {
		fixed = C.malloc(C.size_t(spheretrace.FixedBufferLen * unsafe.Sizeof(float32(0))))
	}
	copy(unsafe.Slice((*float32)(fixed), spheretrace.FixedBufferLen), buf[:])
	return (*C.float)(fixed)
}

// raytrace2 fills p, which the caller sizes to width*height*4 floats.
// Returns 0 on success and -1 on bad dimensions or a nil pointer.
//
//export raytrace2
func raytrace2(width, height C.int, p *C.float) C.int {
	n, err := spheretrace.BufferLen(int(width), int(height))
	if err != nil || p == nil {
		return -1
	}
	dst := unsafe.Slice((*float32)(unsafe.Pointer(p)), n)
	if err := spheretrace.RaytraceInto(int(width), int(height), dst); err != nil {
		spheretrace.DebugLog("raytrace2(%d, %d): %v", width, height, err)
		return -1
	}
	return 0
}

func main() {}
