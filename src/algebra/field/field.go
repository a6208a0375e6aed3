// Package field defines the scalar layer for the conformal-mapping code: a
// generic field-element constraint with complex structure and a per-type
// point at infinity, plus two implementations (floating Complex and exact
// Rational).
//
// Infinity is part of the field type itself. A scalar domain that needs a
// different representation of the point at infinity (an exact field, an
// interval type) supplies it through Inf/IsInf instead of configuring a
// process-wide sentinel, so the algebra and projection code stay
// type-agnostic with no shared mutable state.
package field

import "fmt"

// Element is the contract every scalar type must satisfy. The type parameter
// is the implementing type itself, so arithmetic stays closed over one field.
//
// All predicates are exact: IsZero and Equal apply the type's own notion of
// exact equality, never a tolerance.
type Element[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T

	// Inv returns the multiplicative inverse. Callers that must avoid the
	// type's division-by-zero behavior check IsZero first.
	Inv() T

	Zero() T
	One() T

	// I returns the imaginary unit of the field.
	I() T

	IsZero() bool
	Equal(T) bool

	// Real and Imag return the real and imaginary parts, each as an
	// element of the same field.
	Real() T
	Imag() T

	// Inf returns the type's point at infinity; IsInf reports whether the
	// receiver denotes it.
	Inf() T
	IsInf() bool

	// Hash returns a value-identity hash. Implementations must hash
	// negative zero like positive zero.
	Hash() uint64

	fmt.Stringer
}

// Zero returns the additive identity of T.
func Zero[T Element[T]]() T {
	var z T
	return z.Zero()
}

// One returns the multiplicative identity of T.
func One[T Element[T]]() T {
	var z T
	return z.One()
}

// I returns the imaginary unit of T.
func I[T Element[T]]() T {
	var z T
	return z.I()
}

// Infinity returns the canonical point at infinity of T.
func Infinity[T Element[T]]() T {
	var z T
	return z.Inf()
}
