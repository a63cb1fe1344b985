// Package storeerr holds the storage sentinel errors. It is a leaf
// package so the domain services and the store interfaces can share the
// sentinels without an import cycle (store imports the domain packages
// for its interface signatures).
package storeerr

import "errors"

// ErrNotFound is returned when a requested entity doesn't exist
var ErrNotFound = errors.New("not found")
