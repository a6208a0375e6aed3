package field

import (
	"hash/fnv"
	"io"
	"math/big"
)

// Rational is an exact Gaussian rational: re + im·i with both parts in Q.
// Unlike Complex it has no in-band floating infinity, so the point at
// infinity is carried as an explicit state of the value. Infinity absorbs
// Add, Sub and Mul; Inv exchanges it with zero.
//
// The zero value of Rational is the number 0. Values are immutable; every
// operation allocates fresh big.Rat parts.
type Rational struct {
	re, im *big.Rat
	inf    bool
}

// Rat builds the real rational num/den. den must be nonzero; big.Rat panics
// otherwise, matching the library policy of not validating caller
// preconditions.
func Rat(num, den int64) Rational {
	return Rational{re: big.NewRat(num, den)}
}

// RatInt builds the rational integer n.
func RatInt(n int64) Rational {
	return Rational{re: big.NewRat(n, 1)}
}

// RatComplex builds re + im·i, copying both parts. Nil parts count as zero.
func RatComplex(re, im *big.Rat) Rational {
	z := Rational{}
	if re != nil {
		z.re = new(big.Rat).Set(re)
	}
	if im != nil {
		z.im = new(big.Rat).Set(im)
	}
	return z
}

func (z Rational) rePart() *big.Rat {
	if z.re == nil {
		return new(big.Rat)
	}
	return z.re
}

func (z Rational) imPart() *big.Rat {
	if z.im == nil {
		return new(big.Rat)
	}
	return z.im
}

func (z Rational) Add(w Rational) Rational {
	if z.inf || w.inf {
		return Rational{inf: true}
	}
	return Rational{
		re: new(big.Rat).Add(z.rePart(), w.rePart()),
		im: new(big.Rat).Add(z.imPart(), w.imPart()),
	}
}

func (z Rational) Sub(w Rational) Rational {
	if z.inf || w.inf {
		return Rational{inf: true}
	}
	return Rational{
		re: new(big.Rat).Sub(z.rePart(), w.rePart()),
		im: new(big.Rat).Sub(z.imPart(), w.imPart()),
	}
}

func (z Rational) Neg() Rational {
	if z.inf {
		return Rational{inf: true}
	}
	return Rational{
		re: new(big.Rat).Neg(z.rePart()),
		im: new(big.Rat).Neg(z.imPart()),
	}
}

func (z Rational) Mul(w Rational) Rational {
	if z.inf || w.inf {
		return Rational{inf: true}
	}
	a, b := z.rePart(), z.imPart()
	c, d := w.rePart(), w.imPart()
	re := new(big.Rat).Sub(new(big.Rat).Mul(a, c), new(big.Rat).Mul(b, d))
	im := new(big.Rat).Add(new(big.Rat).Mul(a, d), new(big.Rat).Mul(b, c))
	return Rational{re: re, im: im}
}

func (z Rational) Inv() Rational {
	if z.inf {
		return Rational{}
	}
	if z.IsZero() {
		return Rational{inf: true}
	}
	a, b := z.rePart(), z.imPart()
	n := new(big.Rat).Add(new(big.Rat).Mul(a, a), new(big.Rat).Mul(b, b))
	return Rational{
		re: new(big.Rat).Quo(a, n),
		im: new(big.Rat).Quo(new(big.Rat).Neg(b), n),
	}
}

func (Rational) Zero() Rational { return Rational{} }
func (Rational) One() Rational  { return Rational{re: big.NewRat(1, 1)} }
func (Rational) I() Rational    { return Rational{im: big.NewRat(1, 1)} }

func (z Rational) IsZero() bool {
	return !z.inf && z.rePart().Sign() == 0 && z.imPart().Sign() == 0
}

func (z Rational) Equal(w Rational) bool {
	if z.inf || w.inf {
		return z.inf == w.inf
	}
	return z.rePart().Cmp(w.rePart()) == 0 && z.imPart().Cmp(w.imPart()) == 0
}

// Real returns the real part. The parts of infinity are infinity.
func (z Rational) Real() Rational {
	if z.inf {
		return Rational{inf: true}
	}
	return Rational{re: new(big.Rat).Set(z.rePart())}
}

func (z Rational) Imag() Rational {
	if z.inf {
		return Rational{inf: true}
	}
	return Rational{re: new(big.Rat).Set(z.imPart())}
}

func (Rational) Inf() Rational { return Rational{inf: true} }
func (z Rational) IsInf() bool { return z.inf }

// Hash folds the canonical reduced form of both parts through FNV-1a.
// big.Rat keeps values normalized, so equal values share one string form.
func (z Rational) Hash() uint64 {
	h := fnv.New64a()
	if z.inf {
		io.WriteString(h, "inf")
		return h.Sum64()
	}
	io.WriteString(h, z.rePart().RatString())
	h.Write([]byte{'|'})
	io.WriteString(h, z.imPart().RatString())
	return h.Sum64()
}

func (z Rational) String() string {
	if z.inf {
		return "inf"
	}
	im := z.imPart()
	s := im.RatString()
	if im.Sign() >= 0 {
		s = "+" + s
	}
	return "(" + z.rePart().RatString() + s + "i)"
}
