package targets

import "errors"

var ErrTargetNotFound = errors.New("target not found")
