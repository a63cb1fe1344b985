package project

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidInput indicates invalid project input.
	ErrInvalidInput = errors.New("invalid project input")
	// ErrInvalidStatus indicates an unknown lifecycle status.
	ErrInvalidStatus = errors.New("invalid project status")
	// ErrNotAllowed indicates the viewer lacks the capability for the
	// requested mutation.
	ErrNotAllowed = errors.New("operation not allowed")
	// ErrNotEditing indicates an edit-mode operation without an open draft.
	ErrNotEditing = errors.New("no edit in progress")
)
