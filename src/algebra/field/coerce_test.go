package field

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoerce(t *testing.T) {
	for idx, tc := range []struct {
		in   any
		want Complex
	}{
		{int(3), C(3, 0)},
		{int8(-2), C(-2, 0)},
		{int64(7), C(7, 0)},
		{uint16(9), C(9, 0)},
		{float32(0.5), C(0.5, 0)},
		{float64(-1.25), C(-1.25, 0)},
		{complex64(2 + 1i), C(2, 1)},
		{complex128(-1i), C(0, -1)},
		{C(4, 4), C(4, 4)},
	} {
		t.Run(fmt.Sprintf("%d/%T", idx, tc.in), func(t *testing.T) {
			got, err := Coerce(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestCoerceTypeMismatch(t *testing.T) {
	for idx, in := range []any{"1+2i", nil, []float64{1, 2}, struct{}{}} {
		t.Run(fmt.Sprintf("%d/%T", idx, in), func(t *testing.T) {
			_, err := Coerce(in)
			require.ErrorIs(t, err, ErrTypeMismatch)
		})
	}
}
