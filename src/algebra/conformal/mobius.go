// Package conformal implements Möbius transformations on the extended plane
// over a generic scalar field, the point-triple solvers that construct them,
// and stereographic projection between a sphere and the plane.
//
// Values are immutable: compose, invert and normalize return new
// transformations. A division by zero is never an error; it yields the
// field's point at infinity, and an infinite input is handled as a
// first-class value throughout.
package conformal

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"moebius/src/algebra/field"
)

// Map is the application capability shared by values acting on the extended
// plane. Mobius implements it; callers chain projections with maps through
// it.
type Map[T field.Element[T]] interface {
	Apply(z T) T
}

// Mobius represents z -> (a*z + b) / (c*z + d).
//
// (a,b,c,d) and (λa,λb,λc,λd) denote the same map for any nonzero λ, and the
// coefficients are never auto-normalized, so coefficient-wise comparison is
// meaningless; use Equal. A nonzero determinant is a caller precondition for
// invertibility and is not checked at construction.
type Mobius[T field.Element[T]] struct {
	a, b, c, d T
}

// New builds the transformation z -> (a*z + b) / (c*z + d).
func New[T field.Element[T]](a, b, c, d T) Mobius[T] {
	return Mobius[T]{a: a, b: b, c: c, d: d}
}

// NewFromSlice builds a transformation from a four-element coefficient
// slice, in a,b,c,d order.
func NewFromSlice[T field.Element[T]](coeffs []T) (Mobius[T], error) {
	if len(coeffs) != 4 {
		return Mobius[T]{}, fmt.Errorf("%d coefficients: %w", len(coeffs), ErrCoefficientCount)
	}
	return Mobius[T]{a: coeffs[0], b: coeffs[1], c: coeffs[2], d: coeffs[3]}, nil
}

// NewFromValues builds a Complex transformation from dynamically typed
// coefficients, coercing each through the field layer. It fails with
// field.ErrTypeMismatch when a coefficient has no scalar representation.
func NewFromValues(a, b, c, d any) (Mobius[field.Complex], error) {
	var m Mobius[field.Complex]
	for i, v := range []any{a, b, c, d} {
		z, err := field.Coerce(v)
		if err != nil {
			return Mobius[field.Complex]{}, fmt.Errorf("coefficient %d: %w", i, err)
		}
		switch i {
		case 0:
			m.a = z
		case 1:
			m.b = z
		case 2:
			m.c = z
		default:
			m.d = z
		}
	}
	return m, nil
}

// Identity returns the identity transformation (1,0,0,1) in T.
func Identity[T field.Element[T]]() Mobius[T] {
	return Mobius[T]{
		a: field.One[T](),
		b: field.Zero[T](),
		c: field.Zero[T](),
		d: field.One[T](),
	}
}

// Coeffs returns the stored coefficients in a,b,c,d order.
func (m Mobius[T]) Coeffs() (a, b, c, d T) {
	return m.a, m.b, m.c, m.d
}

// Apply evaluates the transformation at z. Infinity maps to a/c, or back to
// infinity when c is zero; a finite z with an exactly zero denominator maps
// to infinity.
func (m Mobius[T]) Apply(z T) T {
	if z.IsInf() {
		if m.c.IsZero() {
			return z.Inf()
		}
		return m.a.Mul(m.c.Inv())
	}
	num := m.a.Mul(z).Add(m.b)
	den := m.c.Mul(z).Add(m.d)
	if den.IsZero() {
		return z.Inf()
	}
	return num.Mul(den.Inv())
}

// Compose returns the transformation m∘n, applying n first. It is the 2×2
// matrix product of the coefficient matrices.
func (m Mobius[T]) Compose(n Mobius[T]) Mobius[T] {
	return Mobius[T]{
		a: m.a.Mul(n.a).Add(m.b.Mul(n.c)),
		b: m.a.Mul(n.b).Add(m.b.Mul(n.d)),
		c: m.c.Mul(n.a).Add(m.d.Mul(n.c)),
		d: m.c.Mul(n.b).Add(m.d.Mul(n.d)),
	}
}

// Inverse returns the adjugate (d,-b,-c,a). Projectively this inverts any
// transformation with nonzero determinant, whatever the determinant's scale.
func (m Mobius[T]) Inverse() Mobius[T] {
	return Mobius[T]{a: m.d, b: m.b.Neg(), c: m.c.Neg(), d: m.a}
}

// IsIdentity reports b = 0, c = 0 and a = d on the stored coefficients,
// without normalizing first. Any scalar multiple of the identity passes.
func (m Mobius[T]) IsIdentity() bool {
	return m.b.IsZero() && m.c.IsZero() && m.a.Equal(m.d)
}

// Equal reports projective equality: m and n denote the same map iff
// m∘n⁻¹ is a scalar multiple of the identity.
func (m Mobius[T]) Equal(n Mobius[T]) bool {
	return m.Compose(n.Inverse()).IsIdentity()
}

// Det returns ad - bc.
func (m Mobius[T]) Det() T {
	return m.a.Mul(m.d).Sub(m.b.Mul(m.c))
}

// Scale returns the transformation with every coefficient multiplied by t.
// For nonzero t the result denotes the same map.
func (m Mobius[T]) Scale(t T) Mobius[T] {
	return Mobius[T]{a: m.a.Mul(t), b: m.b.Mul(t), c: m.c.Mul(t), d: m.d.Mul(t)}
}

// Normalize scales the coefficients by the inverse determinant. Undefined
// when the determinant is exactly zero; callers wanting a guard use Check.
func (m Mobius[T]) Normalize() Mobius[T] {
	return m.Scale(m.Det().Inv())
}

// Check reports ErrDegenerate when the determinant is exactly zero. It is
// opt-in; no operation calls it on behalf of the caller.
func (m Mobius[T]) Check() error {
	if m.Det().IsZero() {
		return ErrDegenerate
	}
	return nil
}

// Matrix returns the coefficient matrix [[a,b],[c,d]] as a value copy.
func (m Mobius[T]) Matrix() Matrix2[T] {
	return Matrix2[T]{{m.a, m.b}, {m.c, m.d}}
}

// Hash folds the images of 0, 1 and infinity, so projectively equal
// transformations hash identically. Negative-zero normalization happens in
// the field's element hash.
func (m Mobius[T]) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, z := range []T{
		m.Apply(field.Zero[T]()),
		m.Apply(field.One[T]()),
		m.Apply(field.Infinity[T]()),
	} {
		binary.LittleEndian.PutUint64(buf[:], z.Hash())
		h.Write(buf[:])
	}
	return h.Sum64()
}

func (m Mobius[T]) String() string {
	return fmt.Sprintf("z -> (%v*z + %v) / (%v*z + %v)", m.a, m.b, m.c, m.d)
}
