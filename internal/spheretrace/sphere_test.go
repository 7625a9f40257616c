package spheretrace

import (
	"math"
	"testing"
)

func TestIntersectAxisRay(t *testing.T) {
	s := NewSphere()
	r := Ray{Pos: V(0, 0, -5), Dir: V(0, 0, 1)}
	d, ok := r.Intersect(s)
	if !ok {
		t.Fatal("expected sphere hit")
	}
	// (0,0,-5) + t*(0,0,1) reaches the surface at z=-1
	if d != 4 {
		t.Fatalf("t wrong: %.9g", d)
	}
}

func TestIntersectMisses(t *testing.T) {
	s := NewSphere()
	cases := []struct {
		name string
		ray  Ray
		cat  Category
	}{
		{"off axis", Ray{Pos: V(0, 0, -5), Dir: V(-1, -1, 5).Normalize()}, Miss},
		{"parallel", Ray{Pos: V(2, 0, -5), Dir: V(0, 0, 1)}, Miss},
		{"pointing away", Ray{Pos: V(0, 0, -5), Dir: V(0, 0, -1)}, Behind},
		{"inside", Ray{Pos: V(0, 0, 0), Dir: V(0, 0, 1)}, Behind},
		{"on surface", Ray{Pos: V(0, 0, -1), Dir: V(0, 0, 1)}, Behind},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if d, ok := c.ray.Intersect(s); ok {
				t.Fatalf("unexpected hit at %.9g", d)
			}
			if _, cat := c.ray.hit(s); cat != c.cat {
				t.Fatalf("category %s, want %s", cat, c.cat)
			}
		})
	}
}

func TestIntersectOnSurfaceIsZero(t *testing.T) {
	r := Ray{Pos: V(0, 0, -1), Dir: V(0, 0, 1)}
	d, _ := r.hit(NewSphere())
	if d != 0 {
		t.Fatalf("expected t == 0 exactly, got %.9g", d)
	}
}

func TestIntersectOffsetSphere(t *testing.T) {
	s := Sphere{Pos: V(0, 0, 3), Rad: 2, Color: White()}
	r := Ray{Pos: V(0, 0, -5), Dir: V(0, 0, 1)}
	d, ok := r.Intersect(s)
	if !ok || d != 6 {
		t.Fatalf("want hit at 6, got ok=%v t=%.9g", ok, d)
	}
}

func TestNewSphere(t *testing.T) {
	s := NewSphere()
	if s.Pos != V(0, 0, 0) || s.Rad != 1 || s.Color != White() {
		t.Fatalf("unexpected default sphere: %+v", s)
	}
}

// rmul and radd round a single float32 operation through float64, which is
// exact for products and correctly rounded for sums.
func rmul(a, b Real) Real { return Real(float64(a) * float64(b)) }
func radd(a, b Real) Real { return Real(float64(a) + float64(b)) }

func TestIntersectRoundsEachOperation(t *testing.T) {
	s := NewSphere()
	w, h := 23, 17
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r := NewRay(w, h, x, y)
			m := r.Pos.Sub(s.Pos)
			b := m.Dot(r.Dir)
			c := radd(radd(rmul(b, b), -m.Magnitude2()), rmul(s.Rad, s.Rad))
			got, cat := r.hit(s)
			if c < 0 {
				if cat != Miss {
					t.Fatalf("pixel (%d,%d): category %s, want miss", x, y, cat)
				}
				continue
			}
			want := radd(-b, -Real(math.Sqrt(float64(c))))
			if math.Float32bits(got) != math.Float32bits(want) {
				t.Fatalf("pixel (%d,%d): t = %v, want %v", x, y, got, want)
			}
		}
	}
}
