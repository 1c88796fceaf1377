package storage

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrConflict is a unique-constraint collision (duplicate moderator
	// email, client passport or journal (film, client) pair).
	ErrConflict = errors.New("conflict")
	// ErrInvalidReference is a foreign-key violation: the payload points at
	// a parent row that does not exist.
	ErrInvalidReference = errors.New("referenced row does not exist")
)
