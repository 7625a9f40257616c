package spheretrace

// Ray starts at Pos and travels along the unit vector Dir.
type Ray struct {
	Pos Vector
	Dir Vector
}

// NewRay builds the camera ray for pixel (x, y) of a w×h image.
// The eye sits at (0, 0, EyeZ) for every pixel and the direction is
// normalize(rx, ry, FocalLen); there is no aspect-ratio correction.
func NewRay(w, h, x, y int) Ray {
	rx, ry := Coord(w, h, x, y)
	return Ray{
		Pos: V(0, 0, EyeZ),
		Dir: V(rx, ry, FocalLen).Normalize(),
	}
}

// Coord maps a pixel to normalized device coordinates in [-1, 1), y pointing down.
func Coord(w, h, x, y int) (rx, ry Real) {
	rx = Real(x*2-w) / Real(w)
	ry = Real(y*2-h) / Real(h)
	return rx, ry
}

// At returns the point at distance t along the ray.
func (r Ray) At(t Real) Vector {
	return Vector{
		r.Pos[0] + Real(r.Dir[0]*t),
		r.Pos[1] + Real(r.Dir[1]*t),
		r.Pos[2] + Real(r.Dir[2]*t),
	}
}
