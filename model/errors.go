package model

import "errors"

// Errors returned by the catalog and the recommendation service. Load-time
// errors are fatal and abort startup; the rest are returned to the caller.
var (
	ErrEmptyCatalog  = errors.New("catalog is empty")
	ErrInvalidRecord = errors.New("invalid song record")
	ErrSongNotFound  = errors.New("song not found")
	ErrUnknownMood   = errors.New("unknown mood")
	ErrUnknownGenre  = errors.New("unknown genre")
)
