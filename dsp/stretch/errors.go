package stretch

import "errors"

var (
	// ErrInvalidParameters indicates grain geometry or a stretch factor
	// that the algorithm cannot run with.
	ErrInvalidParameters = errors.New("stretch: invalid parameters")

	// ErrInputTooShort indicates an input shorter than one grain, for
	// which no grain can be extracted.
	ErrInputTooShort = errors.New("stretch: input shorter than one grain")
)
