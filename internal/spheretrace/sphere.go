package spheretrace

import (
	"math"
)

// Sphere is the only primitive in the scene.
type Sphere struct {
	Pos   Vector
	Rad   Real
	Color RGB
}

// NewSphere returns the unit white sphere at the origin.
func NewSphere() Sphere {
	return Sphere{
		Pos:   V(0, 0, 0),
		Rad:   1,
		Color: White(),
	}
}

// Intersect returns the distance along the ray to the near surface of s.
// Only the near root is considered: a ray starting inside the sphere misses,
// and so does one starting exactly on the surface (t == 0).
func (r Ray) Intersect(s Sphere) (Real, bool) {
	t, cat := r.hit(s)
	return t, cat == Hit
}

func (r Ray) hit(s Sphere) (Real, Category) {
	m := r.Pos.Sub(s.Pos)
	b := m.Dot(r.Dir)
	c := Real(b*b) - m.Magnitude2() + Real(s.Rad*s.Rad)
	if c < 0 {
		return 0, Miss
	}
	t := -b - Real(math.Sqrt(float64(c)))
	if t > 0 {
		return t, Hit
	}
	return t, Behind
}
