package catalog

import "errors"

var (
	ErrStudioNotFound   = errors.New("studio not found")
	ErrGenreNotFound    = errors.New("genre not found")
	ErrProducerNotFound = errors.New("producer not found")
	ErrActorNotFound    = errors.New("actor not found")

	ErrStudioInUse   = errors.New("cannot delete studio while films reference it")
	ErrGenreInUse    = errors.New("cannot delete genre while films reference it")
	ErrProducerInUse = errors.New("cannot delete producer while films reference it")
	ErrActorInUse    = errors.New("cannot delete actor while filmography credits reference it")
)
