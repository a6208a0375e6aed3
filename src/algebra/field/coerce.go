package field

import "fmt"

// Coerce converts a dynamically typed numeric value to Complex, the least
// common field every built-in numeric kind embeds into. It is the entry
// point for heterogeneous construction input; homogeneous generic code never
// needs it.
func Coerce(v any) (Complex, error) {
	switch n := v.(type) {
	case Complex:
		return n, nil
	case complex128:
		return Complex(n), nil
	case complex64:
		return Complex(complex128(n)), nil
	case float64:
		return C(n, 0), nil
	case float32:
		return C(float64(n), 0), nil
	case int:
		return C(float64(n), 0), nil
	case int8:
		return C(float64(n), 0), nil
	case int16:
		return C(float64(n), 0), nil
	case int32:
		return C(float64(n), 0), nil
	case int64:
		return C(float64(n), 0), nil
	case uint:
		return C(float64(n), 0), nil
	case uint8:
		return C(float64(n), 0), nil
	case uint16:
		return C(float64(n), 0), nil
	case uint32:
		return C(float64(n), 0), nil
	case uint64:
		return C(float64(n), 0), nil
	default:
		return 0, fmt.Errorf("coerce %T: %w", v, ErrTypeMismatch)
	}
}
