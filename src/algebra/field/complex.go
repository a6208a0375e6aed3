package field

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/cmplx"
	"strconv"
)

// Complex is the complex128-backed field. It is the default scalar type; its
// point at infinity is the floating complex infinity.
type Complex complex128

// C builds a Complex from real and imaginary float64 parts.
func C(re, im float64) Complex {
	return Complex(complex(re, im))
}

func (z Complex) Add(w Complex) Complex { return z + w }
func (z Complex) Sub(w Complex) Complex { return z - w }
func (z Complex) Mul(w Complex) Complex { return z * w }
func (z Complex) Neg() Complex          { return -z }
func (z Complex) Inv() Complex          { return 1 / z }

func (Complex) Zero() Complex { return 0 }
func (Complex) One() Complex  { return 1 }
func (Complex) I() Complex    { return 1i }

func (z Complex) IsZero() bool         { return z == 0 }
func (z Complex) Equal(w Complex) bool { return z == w }

func (z Complex) Real() Complex {
	return Complex(complex(real(complex128(z)), 0))
}

func (z Complex) Imag() Complex {
	return Complex(complex(imag(complex128(z)), 0))
}

func (Complex) Inf() Complex {
	return Complex(cmplx.Inf())
}

func (z Complex) IsInf() bool {
	return cmplx.IsInf(complex128(z))
}

// Hash folds both components through FNV-1a. Negative zero components are
// flushed to positive zero first so that -0 and 0 hash identically.
func (z Complex) Hash() uint64 {
	re := real(complex128(z))
	im := imag(complex128(z))
	if re == 0 {
		re = 0
	}
	if im == 0 {
		im = 0
	}
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(re))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(im))
	h := fnv.New64a()
	h.Write(buf[:])
	return h.Sum64()
}

func (z Complex) String() string {
	return strconv.FormatComplex(complex128(z), 'g', -1, 128)
}
