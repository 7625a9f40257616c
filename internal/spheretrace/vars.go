package spheretrace

// Real is the component type of every vector, color and output sample.
type Real = float32

var (
	Debug = false // set to true for verbose debug output
	PNG   = false // set to true to save an 8-bit PNG
	PNG16 = false // set to true to save a 16-bit PNG instead of the 8-bit one
	GIF   = false // set to true to save a GIF
	RAW   = false // set to true to save the raw float32 buffer
)
