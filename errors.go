package nested

import "errors"

// ErrInvalidArgument is returned when a location, or one of its parts, is
// malformed. The wrapped message names the precondition that failed.
var ErrInvalidArgument = errors.New("nested: invalid argument")
