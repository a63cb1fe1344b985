package store

import "github.com/seojinp/projectboard/internal/storeerr"

// ErrNotFound is returned when a requested entity doesn't exist. The
// value lives in storeerr so the domain packages can reference it
// without importing this package.
var ErrNotFound = storeerr.ErrNotFound
