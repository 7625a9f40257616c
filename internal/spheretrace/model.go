package spheretrace

// Model is the scene for one render call: image size, the sphere and its lights.
// It is rebuilt on every call and never shared.
type Model struct {
	Width  int
	Height int
	Sphere Sphere
	Lights []Light
}

// NewModel builds the fixed scene for a w×h render.
func NewModel(w, h int) Model {
	return Model{
		Width:  w,
		Height: h,
		Sphere: NewSphere(),
		Lights: DefaultLights(),
	}
}

// Shade returns the diffuse contribution of one light at distance dist along ray.
// The hit vector stays in sphere-local space and is also used as the origin of
// the light direction; rendered output depends on that exact frame.
func Shade(dist Real, light Light, ray Ray, s Sphere) RGB {
	r := ray.At(dist).Sub(s.Pos)
	n := r.Div(s.Rad)
	l := light.Pos.Sub(r).Normalize()
	b := n.Dot(l)
	// NaN compares false both ways and falls through to black
	if b >= 0 {
		return s.Color.MulRGB(light.Color).Mul(b)
	}
	return Black()
}

// Pixel returns the color seen along ray: black on a miss, otherwise the sum
// of every light's diffuse term.
func (m Model) Pixel(ray Ray) RGB {
	c, _, _ := m.pixel(ray)
	return c
}

func (m Model) pixel(ray Ray) (RGB, Real, Category) {
	dist, cat := ray.hit(m.Sphere)
	if cat != Hit {
		return Black(), dist, cat
	}
	c := Black()
	for _, light := range m.Lights {
		c = c.Add(Shade(dist, light, ray, m.Sphere))
	}
	if c == Black() {
		cat = Dark
	}
	return c, dist, cat
}
