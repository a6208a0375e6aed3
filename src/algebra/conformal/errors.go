package conformal

import "errors"

var (
	// ErrCoefficientCount is returned when a coefficient slice does not
	// hold exactly four entries.
	ErrCoefficientCount = errors.New("conformal: transformation requires exactly four coefficients")

	// ErrDegenerate is reported by the opt-in Check when the determinant
	// is exactly zero. Construction never raises it.
	ErrDegenerate = errors.New("conformal: transformation determinant is zero")

	// ErrAxis is returned for a north-axis index outside 0..2.
	ErrAxis = errors.New("conformal: north axis index out of range")
)
