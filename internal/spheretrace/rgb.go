package spheretrace

// RGB stores color components. Values are never clamped and may leave [0,1].
// Products are converted to Real so they are rounded before any following add.
type RGB struct {
	R, G, B Real
}

func Black() RGB { return RGB{0, 0, 0} }
func White() RGB { return RGB{1, 1, 1} }

func (a RGB) Add(b RGB) RGB    { return RGB{a.R + b.R, a.G + b.G, a.B + b.B} }
func (a RGB) MulRGB(b RGB) RGB { return RGB{Real(a.R * b.R), Real(a.G * b.G), Real(a.B * b.B)} }
func (a RGB) Mul(s Real) RGB   { return RGB{Real(a.R * s), Real(a.G * s), Real(a.B * s)} }
