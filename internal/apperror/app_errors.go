package apperror

import "errors"

var (
	ErrUnknownPlayer        = errors.New("unknown player")
	ErrUnknownVariant       = errors.New("unknown game variant")
	ErrVariantNotSupported  = errors.New("game variant is not supported yet")
	ErrMatchNotFound        = errors.New("match not found")
	ErrCorruptMatchSnapshot = errors.New("corrupt match snapshot")
)
