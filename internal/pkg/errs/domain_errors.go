package errs

import "errors"

// Error categories shared by the command and query layers. Specific sentinels
// are marked with one of these so handlers can map a whole class to a status.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
)
