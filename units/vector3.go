package units

import (
	"fmt"

	"github.com/vsaulue/gustave/gustaveerr"
)

// Vector3 is a 3-element vector of unit U, mirroring the teacher's lin.V3
// (math/lin/vector.go) but generic over the dimension it carries instead of
// being hardcoded to float64.
type Vector3[U Real] struct {
	X, Y, Z U
}

// NewVector3 builds a Vector3 from its three components.
func NewVector3[U Real](x, y, z U) Vector3[U] {
	return Vector3[U]{X: x, Y: y, Z: z}
}

// Add returns v+o, component-wise.
func (v Vector3[U]) Add(o Vector3[U]) Vector3[U] {
	return Vector3[U]{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v-o, component-wise.
func (v Vector3[U]) Sub(o Vector3[U]) Vector3[U] {
	return Vector3[U]{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by the dimensionless factor s.
func (v Vector3[U]) Scale(s float64) Vector3[U] {
	return Vector3[U]{U(float64(v.X) * s), U(float64(v.Y) * s), U(float64(v.Z) * s)}
}

// Dot returns the scalar product of v and o, with units U*U erased to float64
// (callers re-tag the result through a named conversion when the product has
// physical meaning, as RealTraits prescribes).
func (v Vector3[U]) Dot(o Vector3[U]) float64 {
	return float64(v.X)*float64(o.X) + float64(v.Y)*float64(o.Y) + float64(v.Z)*float64(o.Z)
}

// Norm returns the Euclidean length of v, in unit U.
func (v Vector3[U]) Norm() U {
	return U(Sqrt(v.Dot(v)))
}

// Eq reports whether v and o are exactly equal, component-wise.
func (v Vector3[U]) Eq(o Vector3[U]) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z
}

// NormalizedVector3 is a direction: a Vector3[One] with norm == 1, enforced
// at construction (spec.md §3: "A normalized vector has unit one and norm ≈ 1").
type NormalizedVector3 struct {
	x, y, z float64
}

// epsilon bounds what "norm ≈ 1" / "norm ≈ 0" mean for construction checks.
const epsilon = 1e-9

// NewNormalizedVector3 normalizes (x,y,z) and returns gustaveerr.ErrInvalidArgument
// if its norm is too close to zero to normalize meaningfully.
func NewNormalizedVector3(x, y, z float64) (NormalizedVector3, error) {
	n := Sqrt(x*x + y*y + z*z)
	if n < epsilon {
		return NormalizedVector3{}, fmt.Errorf("%w: cannot normalize a near-zero vector", gustaveerr.ErrInvalidArgument)
	}
	return NormalizedVector3{x / n, y / n, z / n}, nil
}

// X, Y, Z expose the direction's components.
func (n NormalizedVector3) X() float64 { return n.x }
func (n NormalizedVector3) Y() float64 { return n.y }
func (n NormalizedVector3) Z() float64 { return n.z }

// Dot returns the cosine of the angle between two directions.
func (n NormalizedVector3) Dot(o NormalizedVector3) float64 {
	return n.x*o.x + n.y*o.y + n.z*o.z
}

// Negate returns the opposite direction.
func (n NormalizedVector3) Negate() NormalizedVector3 {
	return NormalizedVector3{-n.x, -n.y, -n.z}
}

// Scale lifts a direction to a dimensioned vector of unit U by multiplying
// each component by magnitude m.
func Scale[U Real](n NormalizedVector3, m U) Vector3[U] {
	return Vector3[U]{U(n.x * float64(m)), U(n.y * float64(m)), U(n.z * float64(m))}
}

// Normalize returns the direction of v and its norm, or gustaveerr.ErrInvalidArgument
// if v is too close to zero to have a meaningful direction.
func Normalize[U Real](v Vector3[U]) (NormalizedVector3, U, error) {
	norm := v.Norm()
	if Abs(float64(norm)) < epsilon {
		return NormalizedVector3{}, 0, fmt.Errorf("%w: cannot normalize a near-zero vector", gustaveerr.ErrInvalidArgument)
	}
	dir, err := NewNormalizedVector3(float64(v.X), float64(v.Y), float64(v.Z))
	if err != nil {
		return NormalizedVector3{}, 0, err
	}
	return dir, norm, nil
}

// Axis directions along the six cuboid-grid neighbour directions (spec.md §3.1).
var (
	AxisPX = NormalizedVector3{1, 0, 0}
	AxisNX = NormalizedVector3{-1, 0, 0}
	AxisPY = NormalizedVector3{0, 1, 0}
	AxisNY = NormalizedVector3{0, -1, 0}
	AxisPZ = NormalizedVector3{0, 0, 1}
	AxisNZ = NormalizedVector3{0, 0, -1}
)
