package spheretrace

// Channel indices for readability.
const (
	ChR       = 0
	ChG       = 1
	ChB       = 2
	ChA       = 3
	Channels  = 4
	Width     = 256
	Height    = 256
	PNGOut    = "sphere.png"
	GIFOut    = "sphere.gif"
	RAWOut    = "sphere.raw"
	Gamma     = 1.0
	ViewScale = 2
	// camera: eye on -Z looking at the origin, focal distance 5
	EyeZ     = -5.0
	FocalLen = 5.0
	// FixedBufferLen is the capacity of the fixed export buffer used by RaytraceFixed.
	FixedBufferLen = 1_000_000
)
