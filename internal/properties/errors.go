package properties

import "errors"

// ErrRead is returned when the properties source cannot be opened or read.
var ErrRead = errors.New("cannot read properties")
