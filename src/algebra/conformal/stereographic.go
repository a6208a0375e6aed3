package conformal

import (
	"fmt"

	"moebius/src/algebra/field"
)

// Projection is the stereographic projection between the unit sphere around
// center and the coordinate plane through the origin orthogonal to the north
// axis. The projection focus (north pole) is center plus the unit vector
// along that axis; it corresponds to the plane's point at infinity in both
// directions.
//
// Projections are immutable; the north pole and the two in-plane axes are
// fixed at construction.
type Projection[T field.Element[T]] struct {
	center Point3[T]
	axis   int
	j, k   int
	north  Point3[T]
}

// NewProjection returns the projection for the sphere around center with the
// default north axis, the third coordinate axis.
func NewProjection[T field.Element[T]](center Point3[T]) Projection[T] {
	p, _ := NewProjectionAxis(center, 2)
	return p
}

// NewUnitProjection returns the projection for the unit sphere around the
// origin with the default north axis.
func NewUnitProjection[T field.Element[T]]() Projection[T] {
	zero := field.Zero[T]()
	return NewProjection(Point3[T]{zero, zero, zero})
}

// NewProjectionAxis returns the projection with an explicit north-axis
// index in 0..2. The remaining two axes carry the real and imaginary parts,
// in ascending index order.
func NewProjectionAxis[T field.Element[T]](center Point3[T], axis int) (Projection[T], error) {
	if axis < 0 || axis > 2 {
		return Projection[T]{}, fmt.Errorf("axis %d: %w", axis, ErrAxis)
	}
	j, k := planeAxes(axis)
	north := center
	north[axis] = north[axis].Add(field.One[T]())
	return Projection[T]{center: center, axis: axis, j: j, k: k, north: north}, nil
}

func planeAxes(north int) (j, k int) {
	switch north {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

// Center returns the sphere center.
func (p Projection[T]) Center() Point3[T] { return p.center }

// Axis returns the north-axis index.
func (p Projection[T]) Axis() int { return p.axis }

// NorthPole returns the projection focus, center + unit(axis).
func (p Projection[T]) NorthPole() Point3[T] { return p.north }

// Project maps a point in 3-space to the extended plane by following the
// line through the north pole and pt to the projection plane. The north
// pole itself maps to infinity, as does any point whose direction from the
// pole never meets the plane (the prescribed parameter division would be by
// zero).
func (p Projection[T]) Project(pt Point3[T]) T {
	dir := pt.Sub(p.north)
	if dir.IsZero() {
		return field.Infinity[T]()
	}
	if dir[p.axis].IsZero() {
		return field.Infinity[T]()
	}
	t := p.north[p.axis].Neg().Mul(dir[p.axis].Inv())
	re := p.north[p.j].Add(t.Mul(dir[p.j]))
	im := p.north[p.k].Add(t.Mul(dir[p.k]))
	return re.Add(im.Mul(field.I[T]()))
}

// Unproject maps an extended-plane value back to the sphere. Infinity maps
// to the north pole. For a finite z the line from the north pole to z's
// plane point meets the sphere at parameters t = 0 (the pole itself) and
// t = -2·dir[axis] / Σdirᵢ²; the second root is returned.
func (p Projection[T]) Unproject(z T) Point3[T] {
	if z.IsInf() {
		return p.north
	}
	var pz Point3[T]
	pz[p.axis] = field.Zero[T]()
	pz[p.j] = z.Real()
	pz[p.k] = z.Imag()
	dir := pz.Sub(p.north)
	if dir.IsZero() {
		return p.north
	}
	two := field.One[T]().Add(field.One[T]())
	t := two.Neg().Mul(dir[p.axis]).Mul(dir.Dot(dir).Inv())
	return p.north.Add(dir.Scale(t))
}
