package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrUnavailable is returned when the database cannot be reached.
// Callers must treat it as "no answer", never as an empty result.
var ErrUnavailable = errors.New("datastore unavailable")
