package films

import "errors"

var (
	ErrFilmNotFound        = errors.New("film not found")
	ErrFilmographyNotFound = errors.New("filmography not found")
	ErrFilmHasRentals      = errors.New("cannot delete film while journal rows reference it")
	// ErrBadReference covers inserts and updates pointing at a studio,
	// genre, producer or actor id that does not exist.
	ErrBadReference        = errors.New("referenced studio, genre, producer or actor does not exist")
	ErrNoFilmsForProducer  = errors.New("no films found for this producer")
)
