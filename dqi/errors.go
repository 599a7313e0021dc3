package dqi

import "errors"

// ErrNilVerifier indicates a nil *gf2.Verifier.
var ErrNilVerifier = errors.New("dqi: nil verifier")
