package nx

import "errors"

var (
	ErrInvalidMagic  = errors.New("nx: invalid magic")
	ErrTooShort      = errors.New("nx: file too short for header")
	ErrInvalidHeader = errors.New("nx: invalid header")
	ErrSizeMismatch  = errors.New("nx: size mismatch")
)
