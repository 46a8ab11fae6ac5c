package keys

import "errors"

// ErrInvalidArgument indicates an absent collection, resolver or projection func.
var ErrInvalidArgument = errors.New("keys: invalid argument")
