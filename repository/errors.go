package repository

import "errors"

// ErrNotFound indicates the referenced row is absent.
var ErrNotFound = errors.New("not found")
