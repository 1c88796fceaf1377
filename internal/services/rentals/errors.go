package rentals

import "errors"

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrJournalNotFound   = errors.New("journal not found")
	ErrClientHasRentals  = errors.New("cannot delete client while journal rows reference it")
	ErrPassportTaken     = errors.New("client with that passport already exists")
	// ErrDuplicateRental: a client may only hold one journal row per film.
	ErrDuplicateRental   = errors.New("journal row for that film and client already exists")
	ErrBadReference      = errors.New("referenced film or client does not exist")
)
