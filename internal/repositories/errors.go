package repositories

import "errors"

// ErrNotFound is returned when an id lookup matches no record. Handlers map
// it onto the 404 error page.
var ErrNotFound = errors.New("record not found")
