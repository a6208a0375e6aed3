package conformal

import "moebius/src/algebra/field"

// FromCanonicalTriple returns the unique transformation mapping 0, 1 and
// infinity to x, y and z respectively. Any of the three targets may be the
// point at infinity.
//
// The points must be pairwise distinct. A repeated point is not detected
// here; it silently yields a non-invertible transformation. Callers wanting
// a guard use Distinct.
func FromCanonicalTriple[T field.Element[T]](x, y, z T) Mobius[T] {
	zero := field.Zero[T]()
	one := field.One[T]()
	switch {
	case x.IsInf():
		return Mobius[T]{a: z, b: y.Sub(z), c: one, d: zero}
	case y.IsInf():
		return Mobius[T]{a: z.Neg(), b: x, c: one.Neg(), d: one}
	case z.IsInf():
		return Mobius[T]{a: y.Sub(x), b: x, c: zero, d: one}
	default:
		return Mobius[T]{
			a: z.Mul(y.Sub(x)),
			b: x.Mul(z.Sub(y)),
			c: y.Sub(x),
			d: z.Sub(y),
		}
	}
}

// FromTriples returns the unique transformation mapping x,y,z to tx,ty,tz.
// It is built from the canonical solver by composition with an inverse,
// which keeps all infinite-input case analysis in one place.
func FromTriples[T field.Element[T]](x, y, z, tx, ty, tz T) Mobius[T] {
	return FromCanonicalTriple(tx, ty, tz).Compose(FromCanonicalTriple(x, y, z).Inverse())
}

// Distinct reports whether the three points are pairwise distinct, counting
// every representation of infinity as one point.
func Distinct[T field.Element[T]](x, y, z T) bool {
	eq := func(a, b T) bool {
		if a.IsInf() || b.IsInf() {
			return a.IsInf() && b.IsInf()
		}
		return a.Equal(b)
	}
	return !eq(x, y) && !eq(y, z) && !eq(x, z)
}
