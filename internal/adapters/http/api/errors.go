package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrServe       = errors.New("api serve failed")
	ErrBadRequest  = errors.New("bad request")
	ErrUnknownList = errors.New("unknown list")

	// ErrInternal is the only message a 500 body ever carries; the real
	// cause goes to the log, never to the caller.
	ErrInternal = errors.New("internal error")
)
