package web

import "errors"

var errInstructorCodeSpace = errors.New("could not mint a unique instructor code")

var errLoginCodeSpace = errors.New("could not mint a unique login code")
