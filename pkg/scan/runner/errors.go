package runner

import "errors"

// Each failed scan wraps exactly one of these.
var (
	ErrInputIO      = errors.New("failed reading input file")
	ErrEmptyContent = errors.New("no data loaded from input file")
	ErrNoMatches    = errors.New("no interfaces found")
	ErrOutputIO     = errors.New("failed writing output file")
)
