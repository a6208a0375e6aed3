package conformal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"moebius/src/algebra/field"
)

func cpt(x, y, z complex128) Point3[field.Complex] {
	return Pt3(field.Complex(x), field.Complex(y), field.Complex(z))
}

func requirePointClose(t *testing.T, want, got Point3[field.Complex]) {
	t.Helper()
	for i := 0; i < 3; i++ {
		requireClose(t, want[i], got[i])
	}
}

func TestProjectionAccessors(t *testing.T) {
	p, err := NewProjectionAxis(cpt(1, 2, 3), 0)
	require.NoError(t, err)
	require.Equal(t, cpt(1, 2, 3), p.Center())
	require.Equal(t, 0, p.Axis())
	require.Equal(t, cpt(2, 2, 3), p.NorthPole())

	q := NewUnitProjection[field.Complex]()
	require.Equal(t, cpt(0, 0, 0), q.Center())
	require.Equal(t, 2, q.Axis())
	require.Equal(t, cpt(0, 0, 1), q.NorthPole())
}

func TestProjectionAxisError(t *testing.T) {
	for idx, axis := range []int{-1, 3, 7} {
		t.Run(fmt.Sprintf("%d/axis=%d", idx, axis), func(t *testing.T) {
			_, err := NewProjectionAxis(cpt(0, 0, 0), axis)
			require.ErrorIs(t, err, ErrAxis)
		})
	}
}

func TestProjectNorthPole(t *testing.T) {
	p := NewUnitProjection[field.Complex]()
	require.True(t, p.Project(cpt(0, 0, 1)).IsInf())
}

func TestProjectKnownPoints(t *testing.T) {
	p := NewUnitProjection[field.Complex]()
	for idx, tc := range []struct {
		pt   Point3[field.Complex]
		want field.Complex
	}{
		{cpt(0, 0, 0), cx(0, 0)},  // center
		{cpt(0, 0, -1), cx(0, 0)}, // south pole
		{cpt(1, 0, 0), cx(1, 0)},
		{cpt(-1, 0, 0), cx(-1, 0)},
		{cpt(0, 1, 0), cx(0, 1)},
		{cpt(0, -1, 0), cx(0, -1)},
	} {
		t.Run(fmt.Sprintf("%d/%v", idx, tc.pt), func(t *testing.T) {
			require.Equal(t, tc.want, p.Project(tc.pt))
		})
	}
}

func TestProjectParallelDirection(t *testing.T) {
	// A direction from the pole that never meets the plane.
	p := NewUnitProjection[field.Complex]()
	require.True(t, p.Project(cpt(5, 7, 1)).IsInf())
}

func TestUnprojectInfinity(t *testing.T) {
	p := NewUnitProjection[field.Complex]()
	require.Equal(t, p.NorthPole(), p.Unproject(field.Infinity[field.Complex]()))
}

func TestRoundTrip(t *testing.T) {
	p := NewUnitProjection[field.Complex]()
	for idx, pt := range []Point3[field.Complex]{
		cpt(1, 0, 0),
		cpt(-1, 0, 0),
		cpt(0, 1, 0),
		cpt(0, 0, -1),
	} {
		t.Run(fmt.Sprintf("%d/%v", idx, pt), func(t *testing.T) {
			requirePointClose(t, pt, p.Unproject(p.Project(pt)))
		})
	}
}

func TestShiftedCenterAxis0(t *testing.T) {
	p, err := NewProjectionAxis(cpt(1, 2, 3), 0)
	require.NoError(t, err)

	// On the sphere: center + (0,1,0).
	pt := cpt(1, 3, 3)
	z := p.Project(pt)
	require.Equal(t, cx(4, 3), z)
	require.Equal(t, pt, p.Unproject(z))

	require.True(t, p.Project(p.NorthPole()).IsInf())
	require.Equal(t, p.NorthPole(), p.Unproject(field.Infinity[field.Complex]()))
}

func TestUnprojectPlanePointAtPole(t *testing.T) {
	// With center (0,0,-1) the north pole lies in the projection plane;
	// unprojecting its own plane point returns the pole, the t = 0 root.
	p := NewProjection(cpt(0, 0, -1))
	require.Equal(t, cpt(0, 0, 0), p.NorthPole())
	require.Equal(t, p.NorthPole(), p.Unproject(cx(0, 0)))
}

func TestRationalProjectionExact(t *testing.T) {
	p := NewUnitProjection[field.Rational]()

	// (3/5, 0, 4/5) lies on the unit sphere; it projects to exactly 3.
	pt := Pt3(field.Rat(3, 5), field.Rat(0, 1), field.Rat(4, 5))
	z := p.Project(pt)
	require.True(t, z.Equal(field.Rat(3, 1)))
	require.True(t, p.Unproject(z).Equal(pt))

	require.True(t, p.Project(p.NorthPole()).IsInf())
	require.True(t, p.Unproject(field.Infinity[field.Rational]()).Equal(p.NorthPole()))
}
