package lens

import "errors"

var (
	// ErrMagicMismatch indicates a missing or wrong PAR1 marker.
	ErrMagicMismatch = errors.New("magic mismatch")
	// ErrFooterRange indicates a footer length implying a start offset
	// outside the file.
	ErrFooterRange = errors.New("footer range invalid")
	// ErrRangeInvalid indicates a metadata offset pointing outside the file.
	ErrRangeInvalid = errors.New("byte range outside file bounds")
)
