package conformal

import (
	"fmt"

	"moebius/src/algebra/field"
)

// Point3 is a point in 3-space with field-element coordinates, indexable by
// axis.
type Point3[T field.Element[T]] [3]T

// Pt3 builds a Point3 from its coordinates.
func Pt3[T field.Element[T]](x, y, z T) Point3[T] {
	return Point3[T]{x, y, z}
}

func (p Point3[T]) Add(q Point3[T]) Point3[T] {
	return Point3[T]{p[0].Add(q[0]), p[1].Add(q[1]), p[2].Add(q[2])}
}

func (p Point3[T]) Sub(q Point3[T]) Point3[T] {
	return Point3[T]{p[0].Sub(q[0]), p[1].Sub(q[1]), p[2].Sub(q[2])}
}

// Scale multiplies every coordinate by t.
func (p Point3[T]) Scale(t T) Point3[T] {
	return Point3[T]{p[0].Mul(t), p[1].Mul(t), p[2].Mul(t)}
}

// Dot is the non-conjugating bilinear form Σ pᵢqᵢ.
func (p Point3[T]) Dot(q Point3[T]) T {
	return p[0].Mul(q[0]).Add(p[1].Mul(q[1])).Add(p[2].Mul(q[2]))
}

func (p Point3[T]) IsZero() bool {
	return p[0].IsZero() && p[1].IsZero() && p[2].IsZero()
}

func (p Point3[T]) Equal(q Point3[T]) bool {
	return p[0].Equal(q[0]) && p[1].Equal(q[1]) && p[2].Equal(q[2])
}

func (p Point3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", p[0], p[1], p[2])
}

// Matrix2 is a read-only structural view of a transformation's coefficient
// matrix.
type Matrix2[T field.Element[T]] [2][2]T

func (m Matrix2[T]) String() string {
	return fmt.Sprintf("[[%v, %v], [%v, %v]]", m[0][0], m[0][1], m[1][0], m[1][1])
}
