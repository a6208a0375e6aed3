package field

import "errors"

// ErrTypeMismatch is returned by Coerce when a value has no representation
// in the target field. Callers match it with errors.Is; wrapping adds the
// offending value.
var ErrTypeMismatch = errors.New("field: no common scalar type for value")
