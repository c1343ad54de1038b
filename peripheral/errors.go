package peripheral

import "errors"

var (
	ErrOperationNotPermitted = errors.New("operation not permitted")
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrInvalidFrequency      = errors.New("invalid frequency")
)
