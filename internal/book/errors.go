package book

import "errors"

// Sentinel outcomes for the engine's logic violations. These are counted by
// callers and never cause a panic. Callers compare with errors.Is.
var (
	ErrDuplicateOrder   = errors.New("book: duplicate order id")
	ErrUnknownOrder     = errors.New("book: unknown order id")
	ErrCapacityExceeded = errors.New("book: capacity exceeded")
)
