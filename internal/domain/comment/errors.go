package comment

import "errors"

var (
	// ErrCommentNotFound indicates the comment doesn't exist.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrEmptyContent indicates a blank or whitespace-only comment body.
	ErrEmptyContent = errors.New("comment content is empty")
	// ErrNotAllowed indicates the viewer lacks the capability for the
	// requested mutation.
	ErrNotAllowed = errors.New("operation not allowed")
	// ErrAddInFlight indicates a submit is already pending on this stream.
	ErrAddInFlight = errors.New("comment add already in flight")
	// ErrAlreadySubscribed indicates Subscribe was called twice.
	ErrAlreadySubscribed = errors.New("stream already subscribed")
)
