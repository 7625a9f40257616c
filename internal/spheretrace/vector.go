package spheretrace

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vector is a 3D vector of Real components. All operations return new values.
//
// Products in this file are wrapped in Real conversions so the compiler cannot
// fuse them with a following add. Mul and Dot come from mgl32 and carry no such
// guarantee: on FMA targets (arm64, ppc64, s390x) Dot may round differently.
type Vector mgl32.Vec3

// V builds a Vector from its components.
func V(x, y, z Real) Vector { return Vector{x, y, z} }

func (a Vector) X() Real { return a[0] }
func (a Vector) Y() Real { return a[1] }
func (a Vector) Z() Real { return a[2] }

// Vector functions
func (a Vector) Add(b Vector) Vector { return Vector(mgl32.Vec3(a).Add(mgl32.Vec3(b))) }
func (a Vector) Sub(b Vector) Vector { return Vector(mgl32.Vec3(a).Sub(mgl32.Vec3(b))) }
func (a Vector) Mul(s Real) Vector   { return Vector(mgl32.Vec3(a).Mul(s)) }

// MulVec multiplies componentwise.
func (a Vector) MulVec(b Vector) Vector {
	return Vector{Real(a[0] * b[0]), Real(a[1] * b[1]), Real(a[2] * b[2])}
}

// DivVec divides componentwise.
func (a Vector) DivVec(b Vector) Vector { return Vector{a[0] / b[0], a[1] / b[1], a[2] / b[2]} }

// Div divides every component by s.
func (a Vector) Div(s Real) Vector { return Vector{a[0] / s, a[1] / s, a[2] / s} }

// Dot returns the dot product between two vectors.
func (a Vector) Dot(b Vector) Real { return mgl32.Vec3(a).Dot(mgl32.Vec3(b)) }

// Magnitude2 is the squared Euclidean length.
func (a Vector) Magnitude2() Real { return a.Dot(a) }

// Magnitude returns the Euclidean length of the vector.
func (a Vector) Magnitude() Real { return Real(math.Sqrt(float64(a.Magnitude2()))) }

// Normalize returns a unit-length version of the vector.
// The zero vector yields NaN components; callers treat that as "no light".
func (a Vector) Normalize() Vector { return a.Div(a.Magnitude()) }
