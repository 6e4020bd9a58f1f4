package contract

import "errors"

var (
	ErrModelInvoke = errors.New("model invoke failed")
	ErrBackend     = errors.New("booking backend call failed")
	ErrValidation  = errors.New("validation failed")
)
