// SPDX-License-Identifier: MIT

package oracle

import "errors"

var (
	// ErrNilVerifier indicates a nil *gf2.Verifier.
	ErrNilVerifier = errors.New("oracle: nil verifier")

	// ErrNilLayout indicates a nil layout circuit.
	ErrNilLayout = errors.New("oracle: nil layout circuit")

	// ErrRegisterSize indicates register widths that disagree with the system.
	ErrRegisterSize = errors.New("oracle: register size does not match system")

	// ErrUnsupportedSystem indicates a system Handwired and Decoder were not derived for.
	ErrUnsupportedSystem = errors.New("oracle: hand-wired circuits support only B=[[1,1,0],[0,1,1]]")

	// ErrNilPredicate indicates a nil predicate function.
	ErrNilPredicate = errors.New("oracle: nil predicate")

	// ErrRegisterTooWide indicates a truth-table register above MaxPredicateWidth.
	ErrRegisterTooWide = errors.New("oracle: register too wide for truth-table oracle")
)
