package interfaces

import "errors"

// ErrNotFound is returned by any repository operation against a missing
// document id.
var ErrNotFound = errors.New("document not found")
