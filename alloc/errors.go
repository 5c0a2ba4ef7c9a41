package alloc

import "errors"

// ErrInvalidSize is returned by the front-door Allocate when the
// caller requests a negative size.
var ErrInvalidSize = errors.New("alloc: invalid size")

// ErrUnknown is returned by the front-door Allocate when the underlying
// policy returned an empty Block for any reason. Policies never surface
// a richer cause, so the front door has nothing more specific to report.
var ErrUnknown = errors.New("alloc: allocation failed")
