package domain

import "errors"

// ErrValidation is the base error for input validation failures. Services wrap
// it with the joined field messages so the HTTP layer can map it to 400.
var ErrValidation = errors.New("validation failed")
