package repository

import "errors"

// ErrNotFound is returned by lookups that cannot use the nil-entity
// convention, such as ancestor chain resolution.
var ErrNotFound = errors.New("record not found")
