package conformal

import (
	"testing"

	"moebius/src/algebra/field"
)

var (
	benchComplexResult field.Complex
	benchMobiusResult  Mobius[field.Complex]
	benchBoolResult    bool
	benchUint64Result  uint64
	benchPointResult   Point3[field.Complex]
)

func BenchmarkApply(b *testing.B) {
	m := cmob(2, 1, 1, 2)
	z := cx(3, -4)
	for i := 0; i < b.N; i++ {
		benchComplexResult = m.Apply(z)
	}
}

func BenchmarkApplyRational(b *testing.B) {
	one := field.One[field.Rational]()
	two := one.Add(one)
	m := New(two, one, one, two)
	z := field.Rat(1, 2)
	var r field.Rational
	for i := 0; i < b.N; i++ {
		r = m.Apply(z)
	}
	_ = r
}

func BenchmarkCompose(b *testing.B) {
	m := cmob(1, 2, 3, 4)
	n := cmob(0, 1, 1, 0)
	for i := 0; i < b.N; i++ {
		benchMobiusResult = m.Compose(n)
	}
}

func BenchmarkEqual(b *testing.B) {
	m := cmob(1, 2, 3, 4)
	n := m.Scale(cx(2, 0))
	for i := 0; i < b.N; i++ {
		benchBoolResult = m.Equal(n)
	}
}

func BenchmarkHash(b *testing.B) {
	m := cmob(1, 2, 3, 4)
	for i := 0; i < b.N; i++ {
		benchUint64Result = m.Hash()
	}
}

func BenchmarkProject(b *testing.B) {
	p := NewUnitProjection[field.Complex]()
	pt := cpt(1, 0, 0)
	for i := 0; i < b.N; i++ {
		benchComplexResult = p.Project(pt)
	}
}

func BenchmarkUnproject(b *testing.B) {
	p := NewUnitProjection[field.Complex]()
	z := cx(1, 0)
	for i := 0; i < b.N; i++ {
		benchPointResult = p.Unproject(z)
	}
}
