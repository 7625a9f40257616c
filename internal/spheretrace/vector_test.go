package spheretrace

import (
	"math"
	"testing"
)

func TestVectorOps(t *testing.T) {
	v := V(1, 2, 3)
	w := V(-1, 0.5, 2)
	s := Real(3)

	add := v.Add(w)
	if add != V(0, 2.5, 5) {
		t.Fatalf("Add mismatch: %+v", add)
	}
	sub := v.Sub(w)
	if sub != V(2, 1.5, 1) {
		t.Fatalf("Sub mismatch: %+v", sub)
	}
	mul := v.Mul(s)
	if mul != V(3, 6, 9) {
		t.Fatalf("Mul mismatch: %+v", mul)
	}
	if mv := v.MulVec(w); mv != V(-1, 1, 6) {
		t.Fatalf("MulVec mismatch: %+v", mv)
	}
	if dv := V(4, 3, 8).DivVec(V(2, 2, -4)); dv != V(2, 1.5, -2) {
		t.Fatalf("DivVec mismatch: %+v", dv)
	}
	if d := V(3, 6, 9).Div(3); d != V(1, 2, 3) {
		t.Fatalf("Div mismatch: %+v", d)
	}
	dot := v.Dot(w)
	if dot != 6 {
		t.Fatalf("Dot mismatch: got %.7g want 6", dot)
	}
	if m2 := v.Magnitude2(); m2 != 14 {
		t.Fatalf("Magnitude2 mismatch: %.7g", m2)
	}
	if m := V(3, 4, 12).Magnitude(); m != 13 {
		t.Fatalf("Magnitude mismatch: %.7g", m)
	}
	n := v.Normalize()
	if math.Abs(float64(n.Magnitude()-1)) > 1e-6 {
		t.Fatalf("Normalize not unit: %.7g", n.Magnitude())
	}
	if v.X() != 1 || v.Y() != 2 || v.Z() != 3 {
		t.Fatalf("accessors mismatch: %+v", v)
	}
}

func TestNormalizeDividesByMagnitude(t *testing.T) {
	v := V(-1, -1, 5)
	m := v.Magnitude()
	n := v.Normalize()
	want := Vector{v[0] / m, v[1] / m, v[2] / m}
	if n != want {
		t.Fatalf("Normalize = %+v, want %+v", n, want)
	}
}

func TestNormalizeZeroIsNaN(t *testing.T) {
	n := V(0, 0, 0).Normalize()
	for i, c := range n {
		if !math.IsNaN(float64(c)) {
			t.Fatalf("component %d = %v, want NaN", i, c)
		}
	}
}
