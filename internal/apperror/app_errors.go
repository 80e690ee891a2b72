package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotImplemented  = errors.New("not implemented")
	ErrUnknownVariant  = fmt.Errorf("%w: unknown variant", ErrInvalidArgument)
	ErrInputClosed     = errors.New("input closed")
	ErrStatsNotFound   = errors.New("stats not found")
)
