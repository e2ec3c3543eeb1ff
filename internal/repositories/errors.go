package repositories

import "errors"

// ErrNotFound is returned when a requested row does not exist. Callers match
// it with errors.Is; implementations wrap it with identifying detail.
var ErrNotFound = errors.New("record not found")
